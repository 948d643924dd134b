// Package ingest loads netbench run records from a directory of JSON
// files, applying the admission filters before normalization.
package ingest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/xylem"
)

// Pattern is the fixed naming convention of harness record files.
const Pattern = "netbench_*.json"

// A Filter restricts which raw records are admitted into the batch.
// The zero value admits everything. Filters apply to the raw record,
// before normalization, so a record rejected here never contributes
// defaults to the tables.
type Filter struct {
	Mode    string // exact mode match
	BaseURL string // base URL match, trailing-slash-insensitive
	Count   int    // exact sample-count match; 0 = any
	Since   int64  // minimum ts (epoch ms); 0 = any
}

func (f Filter) admits(raw map[string]any) bool {
	if f.Mode != "" && rawString(raw["mode"]) != f.Mode {
		return false
	}

	if f.BaseURL != "" {
		want := strings.TrimRight(f.BaseURL, "/")
		got := strings.TrimRight(rawString(raw["baseUrl"]), "/")

		if got != want {
			return false
		}
	}

	if f.Count != 0 && rawInt64(raw["count"]) != int64(f.Count) {
		return false
	}

	if f.Since != 0 && rawInt64(raw["ts"]) < f.Since {
		return false
	}

	return true
}

// Load reads every Pattern-matching file under dir, in sorted order,
// and returns the admitted records, normalized. Unreadable files and
// invalid JSON are skipped with a warning; the batch continues. A
// directory with no matching files yields an empty batch, not an
// error.
func Load(dir string, filter Filter) []xylem.Run {
	files, err := filepath.Glob(filepath.Join(dir, Pattern))
	if err != nil {
		// Only reachable with a malformed pattern; ours is fixed.
		slog.Warn("globbing input", "dir", dir, "error", err)

		return nil
	}

	slices.Sort(files)

	var runs []xylem.Run

	for _, file := range files {
		data, err := os.ReadFile(file) //nolint:gosec // CLI tool reads user-specified record files
		if err != nil {
			slog.Warn("skipping unreadable file", "file", file,
				"error", fmt.Errorf("%w: %w", fault.ErrReadFailure, err))

			continue
		}

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			slog.Warn("skipping malformed file", "file", file,
				"error", fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err))

			continue
		}

		if !filter.admits(raw) {
			continue
		}

		runs = append(runs, xylem.Normalize(filepath.Base(file), raw))
	}

	return runs
}

// Filters see the raw record, so they accept the same representations
// the normalizer does: a record whose count or ts arrives as a numeric
// string still has to be matchable by --count and --since.
func rawString(value any) string {
	s, _ := value.(string)

	return s
}

func rawInt64(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}

		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}

		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return int64(f)
		}
	}

	return 0
}
