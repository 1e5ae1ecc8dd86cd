package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// RateSnapshotReader reads single-date slices of the daily rate table.
type RateSnapshotReader interface {
	// LatestRates returns the central rate of every currency at the most recent date, ordered by currency.
	LatestRates(ctx context.Context) ([]domain.LatestRate, error)
	// HistoricalRates returns the rows at date. An empty currency or domain.AllCurrencies means all currencies.
	HistoricalRates(ctx context.Context, date domain.Date, currency string) ([]domain.HistoricalRate, error)
}

// RateWindowReader reads trailing windows ending at the most recent date.
type RateWindowReader interface {
	// TrendRates returns rows of the given currencies in [latest - days, latest], ordered by currency then date.
	TrendRates(ctx context.Context, currencies []string, days int) ([]domain.RateObservation, error)
	// CurrencyRates returns rows of one currency in [latest - days, latest], ordered by date.
	CurrencyRates(ctx context.Context, currency string, days int) ([]domain.RateObservation, error)
}

// RateStatsReader reads whole-history aggregates.
type RateStatsReader interface {
	// AverageRates returns the trailing 30 and 365 day means of every currency, in one pass.
	AverageRates(ctx context.Context) ([]domain.AverageRate, error)
	// RecordRates returns the all-time low and high per currency, read together so both
	// sides come from the same source. Ties resolve to the most recent date.
	RecordRates(ctx context.Context) (domain.Records, error)
	// Currencies returns the sorted distinct currency codes.
	Currencies(ctx context.Context) ([]string, error)
	// DateRange returns the first and last date present.
	DateRange(ctx context.Context) (domain.DateRange, error)
}

// RateReader is every read the rate views need. The store-backed repository, the
// synthetic dataset and the fallback adapter all implement it with identical shapes.
type RateReader interface {
	RateSnapshotReader
	RateWindowReader
	RateStatsReader
}
