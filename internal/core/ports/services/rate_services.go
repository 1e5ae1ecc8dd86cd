package services

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// RateSnapshotSvc resolves the single-date views.
type RateSnapshotSvc interface {
	// Latest returns one row per currency at the most recent date.
	Latest(ctx context.Context) ([]domain.LatestRate, error)
	// Historical returns the snapshot at date, optionally for one currency. A nil date yields an empty result.
	Historical(ctx context.Context, date *domain.Date, currency string) ([]domain.HistoricalRate, error)
}

// RateSeriesSvc resolves the trailing-window views and their derived series.
type RateSeriesSvc interface {
	// Trends returns each currency's trailing window with SMA and EMA attached, by currency then date.
	Trends(ctx context.Context, currencies []string, days int) ([]domain.TrendRow, error)
	// Changes returns one currency's trailing window with the percent change of every row.
	Changes(ctx context.Context, currency string, days int) ([]domain.ChangeRow, error)
	// Volatility returns the rolling standard deviation of one currency's trailing window.
	Volatility(ctx context.Context, currency string, days int) (domain.VolatilityReport, error)
}

// RateStatsSvc resolves the whole-history views.
type RateStatsSvc interface {
	Averages(ctx context.Context) ([]domain.AverageRate, error)
	Records(ctx context.Context) (domain.Records, error)
	Currencies(ctx context.Context) ([]string, error)
	DateRange(ctx context.Context) (domain.DateRange, error)
}

// RateViewSvcFacade combines every view resolver.
type RateViewSvcFacade interface {
	RateSnapshotSvc
	RateSeriesSvc
	RateStatsSvc
}

// DashboardSvcFacade resolves a batch of views concurrently.
type DashboardSvcFacade interface {
	// Resolve runs every requested view and returns the payloads keyed by view name.
	// Any view failure fails the whole batch.
	Resolve(ctx context.Context, req domain.ViewRequest) (domain.AggregateResponse, error)
}
