package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// newRootCmd builds the hillclimb command with its own viper instance.
func newRootCmd() *cobra.Command {
	var (
		v          = viper.New()
		configFile string
	)
	cmd := &cobra.Command{
		Use:           "hillclimb [input]",
		Short:         "hillclimb finds the fewest steps up a height map",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			cfg, err := loadConfig(v, configFile)
			if err != nil {
				return err
			}
			initLog(cfg.Log.Level)
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "f", "",
		"config file (default is ./.hillclimb.{yaml,toml,json} if present)")
	flags.Int("workers", 1, "number of concurrent searches for the lowest start")
	flags.Bool("draw", false, "print the best route after the results")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	v.SetDefault("input", "input.txt")
	_ = v.BindPFlag("workers", flags.Lookup("workers"))
	_ = v.BindPFlag("draw", flags.Lookup("draw"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	return cmd
}

// run loads the height map, solves it and prints both answers.
func run(cmd *cobra.Command, cfg Config) error {
	hm, err := heightmap.Load(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"input": cfg.Input,
		"rows":  hm.Rows,
		"cols":  hm.Cols,
		"edges": hm.EdgeCount(),
	}).Debug("loaded height map")

	ctx := cmd.Context()
	rep, err := climb.Solve(ctx, hm, climb.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Part 1:", steps(rep.FromStart))
	fmt.Fprintln(out, "Part 2:", steps(rep.BestStart))

	if cfg.Draw {
		return draw(ctx, out, hm, rep.Best)
	}
	return nil
}

// draw prints the shortest route from the chosen start cell.
func draw(ctx context.Context, out io.Writer, hm *heightmap.HeightMap, from heightmap.Cell) error {
	route, err := climb.Route(ctx, hm, from)
	if errors.Is(err, bfs.ErrNoPath) {
		log.WithField("from", from).Warn("no route to draw")
		return nil
	} else if err != nil {
		return err
	}
	drawing, err := climb.Render(hm, route)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, drawing)
	return err
}

func steps(d int) string {
	if d == bfs.Unreachable {
		return "unreachable"
	}
	return strconv.Itoa(d)
}
