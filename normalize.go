package xylem

import (
	"encoding/json"
	"strconv"
)

// Normalize converts one raw harness record into a fully-populated Run.
// The input comes from an external, possibly interrupted harness run,
// so no shape can be trusted: each field is coerced independently and
// a coercion failure falls back to that field's default instead of
// surfacing an error. A single malformed record must never abort a
// batch.
func Normalize(file string, raw map[string]any) Run {
	probes, _ := raw["probes"].(map[string]any)

	run := Run{
		File:            file,
		TS:              toInt64(raw["ts"], 0),
		Mode:            toString(raw["mode"]),
		BaseURL:         toString(raw["baseUrl"]),
		Count:           toInt(raw["count"], 0),
		WallTime:        toFloat(raw["wallTime"], 0),
		TotalTime:       toFloat(raw["totalTime"], 0),
		PausedMs:        toFloat(raw["pausedMs"], 0),
		TotalBytes:      toInt64(raw["totalBytes"], 0),
		WeakDetectIndex: toInt(raw["weak_detect_index"], -1),
		SwitchTriggerTS: toInt64(raw["switch_trigger_ts"], 0),
		ProbeCount:      toInt(probes["count"], 0),
		ProbeCostMs:     toFloat(probes["costMs"], 0),
	}

	entries, _ := raw["perFile"].([]any)
	if len(entries) > 0 {
		run.PerFile = make([]PerFile, 0, len(entries))
	}

	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			// Not a mapping at all; nothing usable to default from.
			continue
		}

		run.PerFile = append(run.PerFile, PerFile{
			URL:       toString(fields["url"]),
			T:         toFloat(fields["t"], -1),
			Bytes:     toInt64(fields["bytes"], 0),
			Path:      toString(fields["path"]),
			UsedRange: toBool(fields["used_range"]),
			Retried:   toBool(fields["retried"]),
		})
	}

	return run
}

// toFloat accepts JSON numbers in any of the representations the
// decoder may hand back, plus numeric strings, which the harness emits
// for some timing fields.
func toFloat(value any, def float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	case bool:
		if v {
			return 1
		}

		return 0
	}

	return def
}

func toInt64(value any, def int64) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
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

	return def
}

func toInt(value any, def int) int {
	return int(toInt64(value, int64(def)))
}

func toString(value any) string {
	s, _ := value.(string)

	return s
}

func toBool(value any) bool {
	b, _ := value.(bool)

	return b
}
