package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Built-in scene id or scenes/*.json path
	Width   int    // Image width, 0 keeps the scene's
	Height  int    // Image height, 0 keeps the scene's
	Samples int    // Samples per pixel
	Threads int    // Render workers
	Bounces int    // Bounce limit override, 0 keeps the scene's
	Seed    uint64 // Jitter seed
	Format  string // png, bmp or ppm
}

var contentTypes = map[string]string{
	"png": "image/png",
	"bmp": "image/bmp",
	"ppm": "image/x-portable-pixmap",
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	defaults := renderer.DefaultOptions()
	req := &RenderRequest{Scene: "default", Format: "png"}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}
	if format := query.Get("format"); format != "" {
		if _, ok := contentTypes[format]; !ok {
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", defaults.SamplesPerPixel, 0, 1024); err != nil {
		return nil, err
	}
	if req.Threads, err = parseIntParam(query, "threads", defaults.Threads, 1, renderer.MaxThreads); err != nil {
		return nil, err
	}
	if req.Bounces, err = parseIntParam(query, "bounces", 0, 1, 64); err != nil {
		return nil, err
	}
	if req.Seed, err = parseUintParam(query, "seed", defaults.Seed); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Samples > 64 {
		logger.Warningf("large image with %d samples may render slowly", req.Samples)
	}
	return req, nil
}

// createScene resolves a built-in scene id or a scene document under scenes/
func (s *Server) createScene(name string, width, height int) (*scene.Scene, error) {
	override := geometry.CameraConfig{Width: width, Height: height}
	if sc, ok := scene.Builtin(name, override); ok {
		return sc, nil
	}
	if err := loaders.ValidateScenePath(name); err != nil {
		return nil, fmt.Errorf("unknown scene %q: %w", name, err)
	}
	return scene.NewJSONScene(name, override)
}

// handleRender renders the requested scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene, req.Width, req.Height)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, renderer.Options{
		SamplesPerPixel: req.Samples,
		Threads:         req.Threads,
		BounceLimit:     req.Bounces,
		Seed:            req.Seed,
	})
	img, stats, err := raytracer.Render()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, img, "."+req.Format); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	total := stats.Totals()
	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time", stats.Elapsed.String())
	w.Header().Set("X-Render-Rays", strconv.FormatInt(total.Rays, 10))
	w.Header().Set("X-Render-Checks", strconv.FormatInt(total.Checks, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warningf("failed to write image: %v", err)
	}
}
