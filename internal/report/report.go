// Package report renders the mode-comparison report from grouped
// statistics. Rendering is a pure function of the Stats values: it
// never re-reads or re-derives any input.
package report

import (
	"fmt"
	"strings"

	"github.com/farcloser/xylem/internal/stats"
)

// The two modes the comparison is defined over. WIFI_ONLY is the
// baseline; AUTO_SWITCH is the candidate optimization.
const (
	ModeWifiOnly   = "WIFI_ONLY"
	ModeAutoSwitch = "AUTO_SWITCH"
)

// MinRunsPerMode is the documented expectation for a meaningful
// comparison. It is stated in the insufficient-data message, not
// enforced as a check.
const MinRunsPerMode = 5

// Improvement returns the relative improvement of optimized over
// baseline, in percent. Positive means optimized is lower (faster).
// A non-positive baseline yields 0 rather than a division error.
func Improvement(baseline, optimized float64) float64 {
	if baseline <= 0 {
		return 0
	}

	return (baseline - optimized) / baseline * 100
}

// Markdown renders the comparison report: a per-mode statistics table
// followed by the improvement narrative, or an insufficient-data
// statement when either mode has no runs.
func Markdown(groups map[string]stats.Stats) string {
	var b strings.Builder

	b.WriteString("# RESULTS — image loading under weak Wi-Fi\n\n")
	b.WriteString("> Two readings: **wallTime** (includes waits) / **totalTime** (waits excluded). ")
	b.WriteString("Consistency check: sum(perFile.t) ≈ totalTime.\n\n")

	b.WriteString("## Samples\n\n")
	b.WriteString("| Mode | n | wall avg (s) | wall med (s) | total avg (s) | total med (s) | paused avg (s) | probe med (%) | consistency (%) |\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")

	wifi, hasWifi := groups[ModeWifiOnly]
	auto, hasAuto := groups[ModeAutoSwitch]

	writeRow(&b, ModeWifiOnly, wifi, hasWifi)
	writeRow(&b, ModeAutoSwitch, auto, hasAuto)
	b.WriteString("\n")

	b.WriteString("## Conclusion\n\n")

	if hasWifi && hasAuto {
		impAvg := Improvement(wifi.TotalAvg, auto.TotalAvg)
		impMed := Improvement(wifi.TotalMed, auto.TotalMed)

		fmt.Fprintf(&b,
			"- Under weak-Wi-Fi migration, **%s** lowers **totalTime** versus **%s** by **%.1f%%** on average, **%.1f%%** at the median.\n",
			ModeAutoSwitch, ModeWifiOnly, impAvg, impMed)
		fmt.Fprintf(&b,
			"- Median probe overhead is **%.3f%%** of wall time.\n", auto.ProbeMedPct)
		fmt.Fprintf(&b,
			"- Consistency ratios (sum(perFile.t)/totalTime) span **%.1f%%~%.1f%%**.\n",
			auto.ConsistencyMin, auto.ConsistencyMax)
	} else {
		fmt.Fprintf(&b,
			"- Insufficient data: the comparison needs at least %d runs for each of %s and %s.\n",
			MinRunsPerMode, ModeWifiOnly, ModeAutoSwitch)
	}

	b.WriteString("\n---\n")
	b.WriteString("_Generated by xylem report._\n")

	return b.String()
}

func writeRow(b *strings.Builder, mode string, s stats.Stats, present bool) {
	if !present {
		fmt.Fprintf(b, "| %s | 0 | - | - | - | - | - | - | - |\n", mode)

		return
	}

	fmt.Fprintf(b, "| %s | %d | %.3f | %.3f | %.3f | %.3f | %.3f | %.3f | %.1f~%.1f |\n",
		mode, s.N,
		s.WallAvg, s.WallMed,
		s.TotalAvg, s.TotalMed,
		s.PausedAvg, s.ProbeMedPct,
		s.ConsistencyMin, s.ConsistencyMax)
}
