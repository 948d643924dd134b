package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/xylem/internal/export"
	"github.com/farcloser/xylem/internal/stats"
)

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Print per-mode statistics from a runs table",
		ArgsUsage: "<runs.csv>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one argument: path to runs.csv")
			}

			return runDigest(cmd.Args().First(), cmd.String("format"))
		},
	}
}

func runDigest(runsPath, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	samples, err := export.ReadRuns(runsPath)
	if err != nil {
		return err
	}

	groups := stats.Group(samples)

	modes := make([]string, 0, len(groups))
	for mode := range groups {
		modes = append(modes, mode)
	}

	slices.Sort(modes)

	data := make([]*format.Data, 0, len(modes))

	for _, mode := range modes {
		group := groups[mode]
		data = append(data, &format.Data{
			Object: mode,
			Meta: map[string]any{
				"n":               group.N,
				"wall_avg_s":      fmt.Sprintf("%.3f", group.WallAvg),
				"wall_med_s":      fmt.Sprintf("%.3f", group.WallMed),
				"total_avg_s":     fmt.Sprintf("%.3f", group.TotalAvg),
				"total_med_s":     fmt.Sprintf("%.3f", group.TotalMed),
				"paused_avg_s":    fmt.Sprintf("%.3f", group.PausedAvg),
				"probe_med_pct":   fmt.Sprintf("%.3f", group.ProbeMedPct),
				"consistency_pct": fmt.Sprintf("%.1f~%.1f", group.ConsistencyMin, group.ConsistencyMax),
			},
		})
	}

	if len(data) == 0 {
		fmt.Fprintf(os.Stderr, "no runs in %s\n", runsPath)

		return nil
	}

	return formatter.PrintAll(data, os.Stdout)
}
