package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3}, 3},
		{"odd", []float64{5, 1, 3}, 3},
		{"even averages middle pair", []float64{4, 1, 3, 2}, 2.5},
		{"unsorted input", []float64{10, 2, 8, 4, 6}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Median(tt.values), 1e-9)
		})
	}
}

func TestGroupInvariant(t *testing.T) {
	t.Parallel()

	samples := []Sample{
		{Mode: "WIFI_ONLY"},
		{Mode: "WIFI_ONLY"},
		{Mode: "AUTO_SWITCH"},
		{Mode: "WIFI_ONLY"},
	}

	groups := Group(samples)

	require.Len(t, groups, 2)
	assert.Equal(t, 3, groups["WIFI_ONLY"].N)
	assert.Equal(t, 1, groups["AUTO_SWITCH"].N)
}

func TestGroupAbsentMode(t *testing.T) {
	t.Parallel()

	groups := Group([]Sample{{Mode: "WIFI_ONLY", Wall: 1}})

	_, ok := groups["AUTO_SWITCH"]
	assert.False(t, ok, "unobserved modes must not be synthesized")
}

func TestGroupStatistics(t *testing.T) {
	t.Parallel()

	samples := []Sample{
		{Mode: "AUTO_SWITCH", Wall: 1, Total: 2, Paused: 0.5, ProbeRatio: 0.1, Consistency: 98},
		{Mode: "AUTO_SWITCH", Wall: 2, Total: 4, Paused: 0.5, ProbeRatio: 0.3, Consistency: 101},
		{Mode: "AUTO_SWITCH", Wall: 3, Total: 6, Paused: 0.5, ProbeRatio: 0.2, Consistency: 99},
		{Mode: "AUTO_SWITCH", Wall: 4, Total: 8, Paused: 0.5, ProbeRatio: 0.4, Consistency: 100},
	}

	groups := Group(samples)
	g, ok := groups["AUTO_SWITCH"]
	require.True(t, ok)

	assert.Equal(t, 4, g.N)
	assert.InDelta(t, 2.5, g.WallAvg, 1e-9)
	assert.InDelta(t, 2.5, g.WallMed, 1e-9) // even n: (2+3)/2
	assert.InDelta(t, 5.0, g.TotalAvg, 1e-9)
	assert.InDelta(t, 5.0, g.TotalMed, 1e-9)
	assert.InDelta(t, 0.5, g.PausedAvg, 1e-9)
	assert.InDelta(t, 0.25, g.ProbeMedPct, 1e-9) // (0.2+0.3)/2
	assert.InDelta(t, 98.0, g.ConsistencyMin, 1e-9)
	assert.InDelta(t, 101.0, g.ConsistencyMax, 1e-9)
}

func TestGroupEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Group(nil))
}
