// Package export writes the per-run summary and per-file detail CSV
// tables, and reads the summary table back for reporting.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/farcloser/xylem"
	"github.com/farcloser/xylem/internal/stats"
)

// A RunRow pairs a normalized run with its derived metrics; one row of
// the summary table.
type RunRow struct {
	Run     xylem.Run
	Metrics xylem.Metrics
}

// runsColumns defines the ordered runs.csv output columns.
var runsColumns = []string{
	"file", "ts", "mode", "baseUrl", "count",
	"wallTime_s", "totalTime_s", "paused_s",
	"totalBytes", "wifi_bytes", "cell_bytes",
	"weak_detect_index", "switch_trigger_ts",
	"probe_count", "probe_cost_ms", "probe_ratio_pct",
	"sum_perfile_t_s", "consistency_pct",
}

// perFileColumns defines the ordered perfile.csv output columns.
var perFileColumns = []string{
	"file", "url", "t_s", "bytes", "path", "used_range", "retried",
}

// WriteRuns writes the per-run summary table. Float fields use fixed
// precision (3 decimals for seconds, 1 for millisecond costs, 3 for
// the probe ratio, 2 for consistency) so repeated exports of the same
// input are byte-identical. The probe ratio deliberately gets one
// digit more than the other percentages: typical values sit far below
// 1%, and two decimals would flatten them to 0.0x. Keeping these
// widths also keeps re-exports of historical data byte-identical.
// An empty batch still gets the header row.
func WriteRuns(w io.Writer, rows []RunRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(runsColumns); err != nil {
		return fmt.Errorf("writing runs header: %w", err)
	}

	for _, row := range rows {
		run, m := row.Run, row.Metrics

		record := []string{
			run.File,
			strconv.FormatInt(run.TS, 10),
			run.Mode,
			run.BaseURL,
			strconv.Itoa(run.Count),
			fmt.Sprintf("%.3f", run.WallTime),
			fmt.Sprintf("%.3f", run.TotalTime),
			fmt.Sprintf("%.3f", run.PausedMs/1000.0),
			strconv.FormatInt(run.TotalBytes, 10),
			strconv.FormatInt(m.WifiBytes, 10),
			strconv.FormatInt(m.CellBytes, 10),
			strconv.Itoa(run.WeakDetectIndex),
			strconv.FormatInt(run.SwitchTriggerTS, 10),
			strconv.Itoa(run.ProbeCount),
			fmt.Sprintf("%.1f", run.ProbeCostMs),
			fmt.Sprintf("%.3f", m.ProbeRatioPct),
			fmt.Sprintf("%.3f", m.SumPerFileT),
			fmt.Sprintf("%.2f", m.ConsistencyPct),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing runs row for %s: %w", run.File, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WritePerFile writes the per-file detail table: one row per
// (run, perFile entry) pair. Returns the number of rows written.
func WritePerFile(w io.Writer, rows []RunRow) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(perFileColumns); err != nil {
		return 0, fmt.Errorf("writing perfile header: %w", err)
	}

	written := 0

	for _, row := range rows {
		for _, entry := range row.Run.PerFile {
			record := []string{
				row.Run.File,
				entry.URL,
				strconv.FormatFloat(entry.T, 'g', -1, 64),
				strconv.FormatInt(entry.Bytes, 10),
				entry.Path,
				strconv.FormatBool(entry.UsedRange),
				strconv.FormatBool(entry.Retried),
			}

			if err := cw.Write(record); err != nil {
				return written, fmt.Errorf("writing perfile row for %s: %w", row.Run.File, err)
			}

			written++
		}
	}

	cw.Flush()

	return written, cw.Error()
}

// ReadRuns loads a runs.csv back into the samples the statistics
// engine consumes. Column lookup goes through the header, so extra or
// reordered columns are fine; unparseable numeric cells fall back to
// zero the same way the exporter's inputs do.
func ReadRuns(path string) ([]stats.Sample, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified table files
	if err != nil {
		return nil, fmt.Errorf("opening runs table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading runs header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	cell := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}

		return record[i]
	}

	var samples []stats.Sample

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading runs table: %w", err)
		}

		samples = append(samples, stats.Sample{
			Mode:        cell(record, "mode"),
			Wall:        parseFloat(cell(record, "wallTime_s")),
			Total:       parseFloat(cell(record, "totalTime_s")),
			Paused:      parseFloat(cell(record, "paused_s")),
			ProbeRatio:  parseFloat(cell(record, "probe_ratio_pct")),
			Consistency: parseFloat(cell(record, "consistency_pct")),
		})
	}

	return samples, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return f
}
