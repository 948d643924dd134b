package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/xylem/internal/stats"
)

func TestImprovement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		baseline, optimized float64
		want                float64
	}{
		{"faster is positive", 10.0, 7.0, 30.0},
		{"equal is zero", 5.0, 5.0, 0.0},
		{"slower is negative", 10.0, 12.0, -20.0},
		{"zero baseline guarded", 0.0, 7.0, 0.0},
		{"negative baseline guarded", -1.0, 7.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Improvement(tt.baseline, tt.optimized), 1e-9)
		})
	}
}

func twoModeGroups() map[string]stats.Stats {
	return map[string]stats.Stats{
		ModeWifiOnly: {
			N:       6,
			WallAvg: 12, WallMed: 11.5,
			TotalAvg: 10, TotalMed: 10,
			PausedAvg:   1,
			ProbeMedPct: 0,
			ConsistencyMin: 97.5, ConsistencyMax: 101.2,
		},
		ModeAutoSwitch: {
			N:       6,
			WallAvg: 9, WallMed: 8.8,
			TotalAvg: 7, TotalMed: 6.5,
			PausedAvg:   1,
			ProbeMedPct: 0.042,
			ConsistencyMin: 98.1, ConsistencyMax: 100.4,
		},
	}
}

func TestMarkdownComparison(t *testing.T) {
	t.Parallel()

	md := Markdown(twoModeGroups())

	assert.Contains(t, md, "| WIFI_ONLY | 6 |")
	assert.Contains(t, md, "| AUTO_SWITCH | 6 |")
	// (10-7)/10 = 30.0% mean, (10-6.5)/10 = 35.0% median.
	assert.Contains(t, md, "**30.0%** on average")
	assert.Contains(t, md, "**35.0%** at the median")
	assert.Contains(t, md, "**0.042%** of wall time")
	assert.Contains(t, md, "**98.1%~100.4%**")
	assert.NotContains(t, md, "Insufficient data")
}

func TestMarkdownInsufficientData(t *testing.T) {
	t.Parallel()

	groups := map[string]stats.Stats{
		ModeWifiOnly: {N: 6, TotalAvg: 10},
	}

	md := Markdown(groups)

	assert.Contains(t, md, "Insufficient data")
	assert.Contains(t, md, "at least 5 runs")
	assert.Contains(t, md, "| AUTO_SWITCH | 0 | - |")
	assert.NotContains(t, md, "on average")
}

func TestMarkdownNoGroups(t *testing.T) {
	t.Parallel()

	md := Markdown(nil)

	assert.Contains(t, md, "Insufficient data")
	assert.Contains(t, md, "| WIFI_ONLY | 0 |")
}

func TestMarkdownIsPure(t *testing.T) {
	t.Parallel()

	groups := twoModeGroups()
	assert.Equal(t, Markdown(groups), Markdown(groups))
}

func TestChart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Chart(twoModeGroups(), &buf))

	html := buf.String()
	assert.True(t, strings.Contains(html, "echarts"), "expected an echarts document")
	assert.Contains(t, html, "AUTO_SWITCH")
	assert.Contains(t, html, "WIFI_ONLY")
}
