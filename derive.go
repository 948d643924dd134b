package xylem

// Derive computes the cross-field metrics for one normalized run.
//
// Bytes are split by ClassifyPath. The per-file time sum covers only
// successful transfers (t >= 0); failed or unmeasured entries are
// excluded from the sum but still counted in the fail partition. The
// consistency ratio cross-checks that sum against the independently
// measured TotalTime: large deviations indicate overlapping transfers
// or a measurement bug in the harness, and are reported as-is rather
// than clamped. All divisions are guarded, so Derive never fails.
func Derive(run Run) Metrics {
	var metrics Metrics

	for _, entry := range run.PerFile {
		if ClassifyPath(entry.Path) == PathCell {
			metrics.CellBytes += entry.Bytes
		} else {
			metrics.WifiBytes += entry.Bytes
		}

		if entry.T >= 0 {
			metrics.SumPerFileT += entry.T
			metrics.SuccessCount++
		} else {
			metrics.FailCount++
		}
	}

	if run.TotalTime > 0 {
		metrics.ConsistencyPct = metrics.SumPerFileT / run.TotalTime * 100
	}

	if run.WallTime > 0 {
		metrics.ProbeRatioPct = run.ProbeCostMs / (run.WallTime * 1000) * 100
	}

	return metrics
}
