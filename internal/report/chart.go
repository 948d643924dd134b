package report

import (
	"fmt"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/farcloser/xylem/internal/stats"
)

// Chart renders the duration statistics as a grouped bar chart (HTML).
// The Markdown report stays chart-free; this is an optional extra
// artifact for eyeballing the spread between modes.
func Chart(groups map[string]stats.Stats, w io.Writer) error {
	modes := make([]string, 0, len(groups))
	for mode := range groups {
		modes = append(modes, mode)
	}

	slices.Sort(modes)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "netbench durations",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Run durations by mode",
			Subtitle: fmt.Sprintf("wall / total, mean and median (s), %d modes", len(modes)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)

	series := []struct {
		name string
		pick func(stats.Stats) float64
	}{
		{"wall avg", func(s stats.Stats) float64 { return s.WallAvg }},
		{"wall med", func(s stats.Stats) float64 { return s.WallMed }},
		{"total avg", func(s stats.Stats) float64 { return s.TotalAvg }},
		{"total med", func(s stats.Stats) float64 { return s.TotalMed }},
	}

	bar.SetXAxis(modes)

	for _, sr := range series {
		data := make([]opts.BarData, 0, len(modes))
		for _, mode := range modes {
			data = append(data, opts.BarData{Value: sr.pick(groups[mode])})
		}

		bar.AddSeries(sr.name, data)
	}

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	return nil
}
