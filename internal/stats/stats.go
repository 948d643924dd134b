// Package stats groups run samples by mode and computes the
// descriptive statistics the comparison report is built from.
package stats

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Sample is the per-run view the statistics engine consumes: the
// grouping key plus the tracked numeric metrics.
type Sample struct {
	Mode        string
	Wall        float64 // seconds, includes pauses
	Total       float64 // seconds, pauses excluded
	Paused      float64 // seconds
	ProbeRatio  float64 // percent of wall time spent probing
	Consistency float64 // percent, sum(perFile.t) vs total
}

// Stats are the aggregate statistics for one mode.
type Stats struct {
	N int

	WallAvg, WallMed     float64
	TotalAvg, TotalMed   float64
	PausedAvg, PausedMed float64

	ProbeMedPct float64

	ConsistencyMin, ConsistencyMax float64
}

// Group partitions samples by exact mode string and computes Stats per
// partition. Groups exist only for observed modes: a mode with no runs
// is an absent key, never an n=0 entry, and callers must treat the two
// differently.
func Group(samples []Sample) map[string]Stats {
	partitions := make(map[string][]Sample)
	for _, s := range samples {
		partitions[s.Mode] = append(partitions[s.Mode], s)
	}

	out := make(map[string]Stats, len(partitions))

	for mode, part := range partitions {
		wall := column(part, func(s Sample) float64 { return s.Wall })
		total := column(part, func(s Sample) float64 { return s.Total })
		paused := column(part, func(s Sample) float64 { return s.Paused })
		probe := column(part, func(s Sample) float64 { return s.ProbeRatio })
		consistency := column(part, func(s Sample) float64 { return s.Consistency })

		out[mode] = Stats{
			N:              len(part),
			WallAvg:        stat.Mean(wall, nil),
			WallMed:        Median(wall),
			TotalAvg:       stat.Mean(total, nil),
			TotalMed:       Median(total),
			PausedAvg:      stat.Mean(paused, nil),
			PausedMed:      Median(paused),
			ProbeMedPct:    Median(probe),
			ConsistencyMin: floats.Min(consistency),
			ConsistencyMax: floats.Max(consistency),
		}
	}

	return out
}

// Median returns the standard median: the middle value, or the average
// of the two middle values for an even-sized sample. gonum's empirical
// quantiles pick a single order statistic instead, which is not what
// the report tables are defined in terms of.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

func column(samples []Sample, pick func(Sample) float64) []float64 {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = pick(s)
	}

	return values
}
