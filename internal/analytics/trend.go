package analytics

import (
	"math"
	"sort"

	"fittrack/fitness-tracker/internal/domain"
)

// Metric selects which body measurement a trend is computed over.
type Metric string

const (
	MetricWeight  Metric = "weight"
	MetricBodyFat Metric = "bodyFat"
)

// Trend classifies the direction of a metric between its earliest and latest
// recorded sample.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Changes within 2% of the first value are considered noise and classified as
// stable. Fixed policy constant, not configurable.
const stabilityThresholdPct = 2.0

// TrendResult is the outcome of a trend calculation. PercentChange is nil
// when it is undefined: fewer than two samples carry the metric, or the first
// value is zero (division by zero). Callers must handle the nil case.
type TrendResult struct {
	Trend         Trend    `json:"trend"`
	Change        float64  `json:"change"`
	PercentChange *float64 `json:"percentChange,omitempty"`
}

// ComputeTrend compares the chronologically first and last samples that carry
// the selected metric. Samples without a value for the metric are excluded
// entirely, never substituted with zero. With fewer than two usable samples
// the result is stable with zero change.
func ComputeTrend(samples []domain.BodyMetricsSample, metric Metric) TrendResult {
	sorted := make([]domain.BodyMetricsSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var values []float64
	for _, s := range sorted {
		if v := metricValue(s, metric); v != nil {
			values = append(values, *v)
		}
	}
	if len(values) < 2 {
		return TrendResult{Trend: TrendStable}
	}

	first, last := values[0], values[len(values)-1]
	change := last - first

	// The raw division may be infinite or NaN when first is zero. The
	// classification still uses it (an infinite percent change is outside the
	// stability band), but the exposed value is withheld as undefined.
	pct := change / first * 100

	result := TrendResult{Change: change}
	switch {
	case math.Abs(pct) <= stabilityThresholdPct:
		result.Trend = TrendStable
	case change > 0:
		result.Trend = TrendIncreasing
	default:
		result.Trend = TrendDecreasing
	}
	if !math.IsInf(pct, 0) && !math.IsNaN(pct) {
		result.PercentChange = &pct
	}
	return result
}

func metricValue(s domain.BodyMetricsSample, metric Metric) *float64 {
	switch metric {
	case MetricWeight:
		return s.Weight
	case MetricBodyFat:
		return s.BodyFatPct
	}
	return nil
}
