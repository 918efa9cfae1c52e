package schema

import (
	"encoding/json"
	"math"
	"strconv"
)

// Metric is a numeric measurement that is either a finite, non-negative value
// or explicitly marked unavailable/processing. The zero value is unavailable,
// so a missing metric can never masquerade as zero.
type Metric struct {
	Value float64
	State MetricState
}

// MetricOf returns a computed metric carrying the given value.
func MetricOf(v float64) Metric {
	return Metric{Value: v, State: MetricOK}
}

// UnavailableMetric returns the sentinel for a metric that could not be computed.
func UnavailableMetric() Metric {
	return Metric{State: MetricUnavailable}
}

// ProcessingMetric returns the sentinel for a metric the platform is still computing.
func ProcessingMetric() Metric {
	return Metric{State: MetricProcessing}
}

// Ok reports whether the metric carries a usable numeric value.
// NaN, infinite and negative values are rejected alongside the sentinels.
func (m Metric) Ok() bool {
	if m.State != MetricOK {
		return false
	}
	return !math.IsNaN(m.Value) && !math.IsInf(m.Value, 0) && m.Value >= 0
}

// Display formats the metric for human-readable output with the given number
// of decimal places. Sentinels render as their display strings.
func (m Metric) Display(decimals int) string {
	switch m.State {
	case MetricProcessing:
		return ProcessingDisplay
	case MetricOK:
		return strconv.FormatFloat(m.Value, 'f', decimals, 64)
	default:
		return UnavailableDisplay
	}
}

// MarshalJSON encodes a computed metric as a number and a sentinel as its
// display string, matching the shape consumed by the dashboard.
func (m Metric) MarshalJSON() ([]byte, error) {
	switch m.State {
	case MetricOK:
		return json.Marshal(m.Value)
	case MetricProcessing:
		return json.Marshal(ProcessingDisplay)
	default:
		return json.Marshal(UnavailableDisplay)
	}
}

// UnmarshalJSON restores a metric from either a number or a sentinel string.
func (m *Metric) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*m = MetricOf(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == ProcessingDisplay {
		*m = ProcessingMetric()
	} else {
		*m = UnavailableMetric()
	}
	return nil
}
