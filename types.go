package xylem

import "strings"

// A Run is one execution of the netbench harness, normalized from its
// JSON record. Every field is populated: the normalizer substitutes a
// per-field default for anything missing or malformed, so downstream
// code never has to re-check shapes.
type Run struct {
	File            string    // record file name (basename)
	TS              int64     // run start, epoch ms
	Mode            string    // network policy under test, e.g. WIFI_ONLY, AUTO_SWITCH
	BaseURL         string    // image server base URL
	Count           int       // requested sample count
	WallTime        float64   // elapsed seconds, including intentional pauses
	TotalTime       float64   // elapsed seconds, waiting periods excluded
	PausedMs        float64   // total intentional pause, milliseconds
	TotalBytes      int64     // bytes transferred as reported by the harness
	WeakDetectIndex int       // ordinal of weak-Wi-Fi detection; -1 = never detected
	SwitchTriggerTS int64     // epoch ms of the cellular switch trigger; 0 = none
	ProbeCount      int       // number of lightweight network probes
	ProbeCostMs     float64   // cumulative probe cost, milliseconds
	PerFile         []PerFile // per-file transfer entries, in harness order
}

// A PerFile is one transferred file within a run.
type PerFile struct {
	URL       string
	T         float64 // transfer seconds; -1 = failed/unmeasured
	Bytes     int64
	Path      string // network path the harness used, e.g. "wifi", "cell"
	UsedRange bool   // range request was used to resume
	Retried   bool
}

// Metrics are the per-run values derived from a normalized run. They
// are computed once by Derive and never stored back into the record.
type Metrics struct {
	WifiBytes      int64   // bytes over the non-cellular path
	CellBytes      int64   // bytes over the cellular path
	SumPerFileT    float64 // sum of successful per-file transfer seconds
	ConsistencyPct float64 // SumPerFileT / TotalTime * 100; 0 when TotalTime <= 0
	ProbeRatioPct  float64 // ProbeCostMs / (WallTime * 1000) * 100; 0 when WallTime <= 0
	SuccessCount   int     // per-file entries with t >= 0
	FailCount      int     // per-file entries with t < 0
}

// PathClass buckets a per-file transfer by network path.
type PathClass int

const (
	PathWifi PathClass = iota // non-cellular, including unknown and empty paths
	PathCell
)

func (p PathClass) String() string {
	if p == PathCell {
		return "cell"
	}

	return "wifi"
}

// ClassifyPath is the byte-bucketing policy: "cell" (case-insensitive)
// is cellular, every other value is counted toward the wifi bucket.
// Unknown or empty paths mean the harness never left Wi-Fi.
func ClassifyPath(path string) PathClass {
	if strings.EqualFold(path, "cell") {
		return PathCell
	}

	return PathWifi
}
