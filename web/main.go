package main

import (
	"os"

	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/web/server"
	"github.com/urfave/cli"
)

var logger = log.New("web")

func main() {
	app := cli.NewApp()
	app.Name = "raytracer-web"
	app.Usage = "serve the raytracer render API"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Value: 8080,
			Usage: "port to serve on",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Info)
		}
		logger.Noticef("visit http://localhost:%d/api/scenes to list the scenes", ctx.Int("port"))
		return server.NewServer(ctx.Int("port")).Start()
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("error starting server: %v", err)
		os.Exit(1)
	}
}
