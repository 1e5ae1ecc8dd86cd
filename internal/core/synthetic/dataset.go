package synthetic

import (
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/fx_rates_app/internal/core/analytics"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Dataset is an immutable generated history. Rows are ordered by date, then by
// generation currency order. Safe for concurrent use.
type Dataset struct {
	rows       []domain.RateObservation
	currencies []string
	minDate    domain.Date
	maxDate    domain.Date
}

var defaultDataset = sync.OnceValue(func() *Dataset {
	return Generate(DefaultConfig())
})

// NewDataset indexes rows into a Dataset. Rows are ordered by date; rows sharing a
// date keep their relative order. Duplicate (date, currency) pairs keep the last row.
func NewDataset(rows []domain.RateObservation) *Dataset {
	byKey := make(map[string]int, len(rows))
	kept := make([]domain.RateObservation, 0, len(rows))
	for _, r := range rows {
		r.Currency = strings.ToUpper(r.Currency)
		key := r.Date.String() + "|" + r.Currency
		if i, ok := byKey[key]; ok {
			kept[i] = r
			continue
		}
		byKey[key] = len(kept)
		kept = append(kept, r)
	}
	slices.SortStableFunc(kept, func(a, b domain.RateObservation) int {
		return a.Date.Compare(b.Date)
	})

	d := &Dataset{rows: kept}
	seen := make(map[string]struct{})
	for _, r := range kept {
		if _, ok := seen[r.Currency]; !ok {
			seen[r.Currency] = struct{}{}
			d.currencies = append(d.currencies, r.Currency)
		}
	}
	slices.Sort(d.currencies)
	if len(kept) > 0 {
		d.minDate = kept[0].Date
		d.maxDate = kept[len(kept)-1].Date
	}
	return d
}

// Default returns the process-wide dataset built from DefaultConfig.
func Default() *Dataset {
	return defaultDataset()
}

// Len is the number of observations.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Rows returns a copy of every observation.
func (d *Dataset) Rows() []domain.RateObservation {
	return slices.Clone(d.rows)
}

// Latest returns the central rate of every currency at the latest date, ordered by currency.
func (d *Dataset) Latest() []domain.LatestRate {
	out := []domain.LatestRate{}
	for _, r := range d.rows {
		if r.Date.Equal(d.maxDate.Time) {
			out = append(out, domain.LatestRate{Date: r.Date, Currency: r.Currency, Rate: r.CentralRate})
		}
	}
	slices.SortFunc(out, func(a, b domain.LatestRate) int { return strings.Compare(a.Currency, b.Currency) })
	return out
}

// Window returns the observations of the given currencies inside
// [latest - days, latest], ordered by currency then date.
func (d *Dataset) Window(currencies []string, days int) []domain.RateObservation {
	cutoff := d.maxDate.AddDays(-days)
	wanted := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		wanted[strings.ToUpper(c)] = struct{}{}
	}

	out := []domain.RateObservation{}
	for _, r := range d.rows {
		if _, ok := wanted[r.Currency]; !ok || r.Date.Before(cutoff.Time) {
			continue
		}
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b domain.RateObservation) int {
		if c := strings.Compare(a.Currency, b.Currency); c != 0 {
			return c
		}
		return a.Date.Compare(b.Date)
	})
	return out
}

// Averages returns the trailing 30 and 365 day means of every currency, rounded to 2 places.
func (d *Dataset) Averages() []domain.AverageRate {
	monthlyCutoff := d.maxDate.AddDays(-domain.AveragesMonthlyDays)
	yearlyCutoff := d.maxDate.AddDays(-domain.AveragesYearlyDays)

	monthly := make(map[string][]float64)
	yearly := make(map[string][]float64)
	for _, r := range d.rows {
		v := r.CentralRate.InexactFloat64()
		if !r.Date.Before(yearlyCutoff.Time) {
			yearly[r.Currency] = append(yearly[r.Currency], v)
		}
		if !r.Date.Before(monthlyCutoff.Time) {
			monthly[r.Currency] = append(monthly[r.Currency], v)
		}
	}

	out := make([]domain.AverageRate, 0, len(d.currencies))
	for _, code := range d.currencies {
		out = append(out, domain.AverageRate{
			Currency:   code,
			MonthlyAvg: meanDecimal(monthly[code]),
			YearlyAvg:  meanDecimal(yearly[code]),
		})
	}
	return out
}

func meanDecimal(values []float64) decimal.NullDecimal {
	m, ok := analytics.Mean(values)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(round2(m))
}

// Lows returns the all-time lowest central rate per currency. Ties go to the most recent date.
func (d *Dataset) Lows() []domain.RecordRate {
	return d.extremes(func(candidate, current decimal.Decimal) bool {
		return candidate.LessThanOrEqual(current)
	})
}

// Highs returns the all-time highest central rate per currency. Ties go to the most recent date.
func (d *Dataset) Highs() []domain.RecordRate {
	return d.extremes(func(candidate, current decimal.Decimal) bool {
		return candidate.GreaterThanOrEqual(current)
	})
}

// extremes walks rows in ascending date order, so an inclusive comparison lets later ties win.
func (d *Dataset) extremes(better func(candidate, current decimal.Decimal) bool) []domain.RecordRate {
	best := make(map[string]domain.RateObservation, len(d.currencies))
	for _, r := range d.rows {
		cur, ok := best[r.Currency]
		if !ok || better(r.CentralRate, cur.CentralRate) {
			best[r.Currency] = r
		}
	}

	out := make([]domain.RecordRate, 0, len(best))
	for _, code := range d.currencies {
		r, ok := best[code]
		if !ok {
			continue
		}
		out = append(out, domain.RecordRate{Currency: code, Date: r.Date, Rate: r.CentralRate})
	}
	return out
}

// Records returns both lows and highs.
func (d *Dataset) Records() domain.Records {
	return domain.Records{Lows: d.Lows(), Highs: d.Highs()}
}

// Currencies returns the sorted distinct currency codes.
func (d *Dataset) Currencies() []string {
	return append([]string{}, d.currencies...)
}

// DateRange returns the first and last dates, or nils for an empty dataset.
func (d *Dataset) DateRange() domain.DateRange {
	if len(d.rows) == 0 {
		return domain.DateRange{}
	}
	minDate, maxDate := d.minDate, d.maxDate
	return domain.DateRange{MinDate: &minDate, MaxDate: &maxDate}
}

// Historical returns the snapshot at date, optionally restricted to one currency.
// An empty currency or domain.AllCurrencies disables the filter.
func (d *Dataset) Historical(date domain.Date, currency string) []domain.HistoricalRate {
	filter := strings.ToUpper(currency)
	if currency == "" || currency == domain.AllCurrencies {
		filter = ""
	}

	out := []domain.HistoricalRate{}
	for _, r := range d.rows {
		if !r.Date.Equal(date.Time) || (filter != "" && r.Currency != filter) {
			continue
		}
		out = append(out, domain.HistoricalRate{
			Date:        r.Date,
			Currency:    r.Currency,
			Rate:        r.CentralRate,
			BuyingRate:  r.BuyingRate,
			SellingRate: r.SellingRate,
		})
	}
	slices.SortFunc(out, func(a, b domain.HistoricalRate) int { return strings.Compare(a.Currency, b.Currency) })
	return out
}
