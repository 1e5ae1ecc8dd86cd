// Package analytics holds the pure numeric transforms applied to rate series.
//
// Every windowed transform returns a slice the same length as its input. Entries
// before the window fills are undefined (domain.NullFloat64 with Valid=false),
// never zero or extrapolated. Inputs must be ordered ascending by date; see
// SeriesByCurrency.
package analytics

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// SMA calculates the simple moving average over a trailing inclusive window of period values.
func SMA(data []float64, period int) []domain.NullFloat64 {
	n := len(data)
	result := make([]domain.NullFloat64, n)
	if period <= 0 || n < period {
		return result
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
	}
	result[period-1] = domain.Float(sum / float64(period))

	for i := period; i < n; i++ {
		sum += data[i] - data[i-period]
		result[i] = domain.Float(sum / float64(period))
	}

	return result
}

// EMA calculates the exponential moving average. The value at period-1 is seeded
// with the SMA of the first period values.
func EMA(data []float64, period int) []domain.NullFloat64 {
	n := len(data)
	result := make([]domain.NullFloat64, n)
	if period <= 0 || n < period {
		return result
	}

	multiplier := 2.0 / float64(period+1)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
	}
	prev := sum / float64(period)
	result[period-1] = domain.Float(prev)

	for i := period; i < n; i++ {
		prev = (data[i]-prev)*multiplier + prev
		result[i] = domain.Float(prev)
	}

	return result
}

// Mean returns the arithmetic mean, or false for an empty input.
func Mean(data []float64) (float64, bool) {
	if len(data) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), true
}
