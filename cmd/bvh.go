package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print the BVH of a scene followed by a summary table.
func DumpBVH(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("expected exactly one scene argument")
	}

	sc, err := scene.Load(ctx.Args().First())
	if err != nil {
		return err
	}
	if err := sc.Preprocess(); err != nil {
		return err
	}

	if !ctx.Bool("stats-only") {
		if err := sc.BVH.Dump(ctx.App.Writer); err != nil {
			return err
		}
	}
	displayBVHStats(ctx, sc.BVH.Stats())
	return nil
}

func displayBVHStats(ctx *cli.Context, stats geometry.BVHStats) {
	kinds := make([]string, 0, len(stats.Kinds))
	for kind := range stats.Kinds {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitive", "Leaves"})
	for _, kind := range kinds {
		table.Append([]string{kind, fmt.Sprintf("%d", stats.Kinds[geometry.Kind(kind)])})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d nodes, depth %d", stats.Nodes, stats.MaxDepth),
		fmt.Sprintf("%d", stats.Leaves),
	})
	table.Render()
}
