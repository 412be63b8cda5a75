package main

import (
	"os"
	"runtime"

	"github.com/df07/go-phong-raytracer/cmd"
	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func newApp() *cli.App {
	// The default "version, v" flag would collide with -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes with recursive phong ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scenes to image files",
			Description: `
Render built-in scenes or JSON scene documents. Directory arguments are
expanded to the JSON documents they contain, in name order.

A single scene is written to --out. When several scenes are rendered each
frame is written next to --out as a zero-padded frame number (00000.ppm,
00001.ppm, ...) using the extension of --out.`,
			ArgsUsage: "scene1 [scene2.json scenes/ ...]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "samples, s",
					Value: 4,
					Usage: "samples per pixel, 0 disables antialiasing",
				},
				cli.IntFlag{
					Name:  "threads, t",
					Value: runtime.NumCPU(),
					Usage: "number of render workers",
				},
				cli.IntFlag{
					Name:  "bounces",
					Usage: "override the bounce limit of the scene",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for the antialiasing jitter",
				},
				cli.StringFlag{
					Name:  "mode",
					Usage: "override the render mode of the scene (phong or binary)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "override the frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "override the frame height",
				},
				cli.IntFlag{
					Name:  "start",
					Usage: "skip the first frames of a batch",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.ppm",
					Usage: "image filename (.ppm, .png or .bmp)",
				},
			},
			Action: cmd.RenderScenes,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes and scene documents",
			Action: cmd.ListScenes,
		},
		{
			Name:      "bvh",
			Usage:     "print the bounding volume hierarchy of a scene",
			ArgsUsage: "scene",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "stats-only",
					Usage: "print only the summary table",
				},
			},
			Action: cmd.DumpBVH,
		},
		{
			Name:  "serve",
			Usage: "serve the render API over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: cmd.Serve,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
