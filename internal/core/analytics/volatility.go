package analytics

import (
	"math"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// RollingStdDev calculates the population standard deviation (divisor = window)
// over each trailing window of values.
func RollingStdDev(data []float64, window int) []domain.NullFloat64 {
	n := len(data)
	result := make([]domain.NullFloat64, n)
	if window <= 0 || n < window {
		return result
	}

	for i := window - 1; i < n; i++ {
		slice := data[i-window+1 : i+1]
		mean, _ := Mean(slice)
		sq := 0.0
		for _, v := range slice {
			d := v - mean
			sq += d * d
		}
		result[i] = domain.Float(math.Sqrt(sq / float64(window)))
	}

	return result
}

// EffectiveWindow shrinks window to the series length. The second result is false when the
// series is shorter than the requested window, which callers report as insufficient history.
func EffectiveWindow(seriesLen, window int) (int, bool) {
	if seriesLen < window {
		return seriesLen, false
	}
	return window, true
}
