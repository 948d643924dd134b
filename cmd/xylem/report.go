package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/xylem/internal/export"
	"github.com/farcloser/xylem/internal/report"
	"github.com/farcloser/xylem/internal/stats"
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Render the WIFI_ONLY vs AUTO_SWITCH comparison report from a runs table",
		ArgsUsage: "<runs.csv>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output path for the Markdown report",
				Value:   "RESULTS.md",
			},
			&cli.StringFlag{
				Name:  "charts",
				Usage: "Also write an HTML bar chart of the duration statistics to this path",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one argument: path to runs.csv")
			}

			return runReport(cmd.Args().First(), cmd.String("out"), cmd.String("charts"))
		},
	}
}

func runReport(runsPath, outPath, chartsPath string) error {
	samples, err := export.ReadRuns(runsPath)
	if err != nil {
		return err
	}

	groups := stats.Group(samples)

	if err := writeOutput(outPath, func(w io.Writer) error {
		_, werr := io.WriteString(w, report.Markdown(groups))

		return werr
	}); err != nil {
		return err
	}

	if chartsPath != "" {
		if err := writeOutput(chartsPath, func(w io.Writer) error {
			return report.Chart(groups, w)
		}); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "[OK] wrote %s (%d runs, %d modes)\n", outPath, len(samples), len(groups))

	return nil
}
