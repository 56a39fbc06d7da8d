package features

import (
	"fmt"
)

// ComparisonResult holds one metric compared across two takes. PercentDelta
// is nil when take A's value is zero; the delta is then undefined rather
// than infinite.
type ComparisonResult struct {
	MetricName   string   `json:"metric_name"`
	ValueA       float64  `json:"value_a"`
	ValueB       float64  `json:"value_b"`
	PercentDelta *float64 `json:"percent_delta,omitempty"`
	Formatted    string   `json:"formatted"`
}

// comparisonMetric describes how one FeatureSet field is compared
type comparisonMetric struct {
	name      string
	unit      string
	precision int
	value     func(*FeatureSet) float64
}

// comparisonMetrics fixes the metric order of every comparison report
var comparisonMetrics = []comparisonMetric{
	{name: "duration", unit: "s", precision: 2, value: func(f *FeatureSet) float64 { return f.Duration }},
	{name: "rms_mean", unit: "", precision: 4, value: func(f *FeatureSet) float64 { return f.RMSMean }},
	{name: "pitch_mean", unit: "Hz", precision: 2, value: func(f *FeatureSet) float64 { return f.PitchMean }},
	{name: "pitch_std", unit: "Hz", precision: 2, value: func(f *FeatureSet) float64 { return f.PitchStd }},
	{name: "clarity_mean", unit: "", precision: 4, value: func(f *FeatureSet) float64 { return f.ClarityMean }},
}

// Compare pairs two feature sets and reports the percent change from A to B
// for each headline metric, in fixed order
func Compare(a, b *FeatureSet) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(comparisonMetrics))

	for _, metric := range comparisonMetrics {
		va := metric.value(a)
		vb := metric.value(b)

		result := ComparisonResult{
			MetricName: metric.name,
			ValueA:     va,
			ValueB:     vb,
		}

		if va != 0 {
			delta := (vb - va) / va * 100
			result.PercentDelta = &delta
			result.Formatted = fmt.Sprintf("%.*f%s → %.*f%s (%+.1f%%)",
				metric.precision, va, metric.unit, metric.precision, vb, metric.unit, delta)
		} else {
			result.Formatted = fmt.Sprintf("%.*f%s → %.*f%s (n/a)",
				metric.precision, va, metric.unit, metric.precision, vb, metric.unit)
		}

		results = append(results, result)
	}

	return results
}
