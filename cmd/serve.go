package cmd

import (
	"github.com/df07/go-phong-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve the render API.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	return server.NewServer(ctx.Int("port")).Start()
}
