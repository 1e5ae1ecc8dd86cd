package analytics

import (
	"slices"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// SortSeries orders observations of a single currency ascending by date and drops
// duplicate dates, keeping the last occurrence.
func SortSeries(obs []domain.RateObservation) []domain.RateObservation {
	sorted := slices.Clone(obs)
	slices.SortStableFunc(sorted, func(a, b domain.RateObservation) int {
		return a.Date.Compare(b.Date)
	})

	out := sorted[:0]
	for _, o := range sorted {
		if n := len(out); n > 0 && out[n-1].Date.Equal(o.Date.Time) {
			out[n-1] = o
			continue
		}
		out = append(out, o)
	}
	return out
}

// SeriesByCurrency splits mixed observations into one sorted, duplicate-free series per
// currency. The returned codes are sorted.
func SeriesByCurrency(obs []domain.RateObservation) ([]string, map[string][]domain.RateObservation) {
	grouped := make(map[string][]domain.RateObservation)
	for _, o := range obs {
		code := strings.ToUpper(o.Currency)
		grouped[code] = append(grouped[code], o)
	}

	codes := make([]string, 0, len(grouped))
	for code, series := range grouped {
		grouped[code] = SortSeries(series)
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes, grouped
}

// CentralRates extracts the central rates of a series as float64.
func CentralRates(series []domain.RateObservation) []float64 {
	values := make([]float64, len(series))
	for i, o := range series {
		values[i] = o.CentralRate.InexactFloat64()
	}
	return values
}
