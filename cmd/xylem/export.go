package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/xylem"
	"github.com/farcloser/xylem/internal/export"
	"github.com/farcloser/xylem/internal/ingest"
)

var errNotDirectory = errors.New("not a directory")

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Read netbench_*.json run records and write the per-run and per-file CSV tables",
		ArgsUsage: "<folder>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "runs",
				Usage: "Output path for the per-run summary table",
				Value: "runs.csv",
			},
			&cli.StringFlag{
				Name:  "perfile",
				Usage: "Output path for the per-file detail table",
				Value: "perfile.csv",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Admit only records with this mode (e.g. WIFI_ONLY, AUTO_SWITCH)",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Admit only records with this base URL (trailing slash ignored)",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Admit only records with this sample count",
			},
			&cli.IntFlag{
				Name:  "since",
				Usage: "Admit only records with ts at or after this epoch-ms timestamp",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one argument: folder path")
			}

			filter := ingest.Filter{
				Mode:    cmd.String("mode"),
				BaseURL: cmd.String("base-url"),
				Count:   cmd.Int("count"),
				Since:   int64(cmd.Int("since")),
			}

			return runExport(cmd.Args().First(), cmd.String("runs"), cmd.String("perfile"), filter)
		},
	}
}

func runExport(folder, runsPath, perFilePath string, filter ingest.Filter) error {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", folder, errNotDirectory)
	}

	runs := ingest.Load(folder, filter)

	rows := make([]export.RunRow, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, export.RunRow{Run: run, Metrics: xylem.Derive(run)})
	}

	if err := writeOutput(runsPath, func(w io.Writer) error {
		return export.WriteRuns(w, rows)
	}); err != nil {
		return err
	}

	detailRows := 0

	if err := writeOutput(perFilePath, func(w io.Writer) error {
		var werr error
		detailRows, werr = export.WritePerFile(w, rows)

		return werr
	}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "[OK] wrote %s (%d rows) and %s (%d rows)\n",
		runsPath, len(rows), perFilePath, detailRows)

	return nil
}

// writeOutput creates the parent directory on demand and makes the
// write failure fatal: without its tables the run has no deliverable.
func writeOutput(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path) //nolint:gosec // CLI tool writes user-specified output files
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return err
	}

	return file.Close()
}
