package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render one or more scenes. A single scene is written to --out; several
// scenes are written next to it as zero-padded frame numbers.
func RenderScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing scene argument")
	}
	scenes, err := expandSceneArgs(ctx.Args())
	if err != nil {
		return err
	}

	start := ctx.Int("start")
	if start < 0 || start >= len(scenes) {
		return fmt.Errorf("start frame %d outside the %d scenes to render", start, len(scenes))
	}

	options := renderer.Options{
		SamplesPerPixel: ctx.Int("samples"),
		Threads:         ctx.Int("threads"),
		BounceLimit:     ctx.Int("bounces"),
		Seed:            ctx.Uint64("seed"),
	}
	override := geometry.CameraConfig{Width: ctx.Int("width"), Height: ctx.Int("height")}

	out := ctx.String("out")
	for index := start; index < len(scenes); index++ {
		filename := out
		if len(scenes) > 1 {
			filename = frameFilename(out, index)
		}
		if err := renderScene(scenes[index], filename, ctx.String("mode"), override, options); err != nil {
			return err
		}
	}
	return nil
}

func renderScene(nameOrPath, filename, mode string, override geometry.CameraConfig, options renderer.Options) error {
	sc, err := scene.Load(nameOrPath, override)
	if err != nil {
		return err
	}
	if mode != "" {
		sc.Mode = core.ParseRenderMode(mode)
	}

	img, stats, err := renderer.NewRaytracer(sc, options).Render()
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", nameOrPath, err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := loaders.SaveImage(filename, img); err != nil {
		return err
	}

	logger.Noticef("frame statistics\n%s", stats.Report())
	return nil
}

// expandSceneArgs replaces every directory argument with the sorted JSON
// documents it contains
func expandSceneArgs(args []string) ([]string, error) {
	scenes := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			scenes = append(scenes, arg)
			continue
		}

		documents, err := loaders.ListSceneDocuments(arg)
		if err != nil {
			return nil, err
		}
		if len(documents) == 0 {
			logger.Warningf("no scene documents in %s", arg)
		}
		sort.Strings(documents)
		scenes = append(scenes, documents...)
	}
	return scenes, nil
}

// frameFilename numbers a batch frame: render.ppm, 3 -> 00003.ppm in the same directory
func frameFilename(out string, index int) string {
	ext := filepath.Ext(out)
	if ext == "" {
		ext = ".ppm"
	}
	return filepath.Join(filepath.Dir(out), fmt.Sprintf("%05d%s", index, ext))
}
