// Package ratesource composes the store-backed rate reader with the synthetic dataset.
package ratesource

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/SscSPs/fx_rates_app/internal/platform/metrics"
)

// FallbackSource reads from primary and answers from fallback whenever primary is absent or fails.
// Callers therefore never observe a store error.
type FallbackSource struct {
	primary      portsrepo.RateReader
	fallback     portsrepo.RateReader
	queryTimeout time.Duration
}

var _ portsrepo.RateReader = (*FallbackSource)(nil)

// NewFallbackSource creates a FallbackSource. primary may be nil; queryTimeout <= 0 disables the per-query deadline.
func NewFallbackSource(primary, fallback portsrepo.RateReader, queryTimeout time.Duration) *FallbackSource {
	return &FallbackSource{primary: primary, fallback: fallback, queryTimeout: queryTimeout}
}

// HasPrimary reports whether a store is configured.
func (s *FallbackSource) HasPrimary() bool {
	return s.primary != nil
}

func fetch[T any](ctx context.Context, s *FallbackSource, query string, read func(context.Context, portsrepo.RateReader) (T, error)) (T, error) {
	if s.primary == nil {
		metrics.SourceFallbacks.WithLabelValues(query, metrics.FallbackReasonUnavailable).Inc()
		return read(ctx, s.fallback)
	}

	qctx := ctx
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		qctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	result, err := read(qctx, s.primary)
	if err == nil {
		return result, nil
	}

	middleware.GetLoggerFromCtx(ctx).Warn("Rate store query failed, serving synthetic data",
		slog.String("query", query),
		slog.String("error", err.Error()),
	)
	metrics.SourceFallbacks.WithLabelValues(query, metrics.FallbackReasonQueryError).Inc()
	return read(ctx, s.fallback)
}

func (s *FallbackSource) LatestRates(ctx context.Context) ([]domain.LatestRate, error) {
	return fetch(ctx, s, "latest", func(ctx context.Context, r portsrepo.RateReader) ([]domain.LatestRate, error) {
		return r.LatestRates(ctx)
	})
}

func (s *FallbackSource) HistoricalRates(ctx context.Context, date domain.Date, currency string) ([]domain.HistoricalRate, error) {
	return fetch(ctx, s, "historical", func(ctx context.Context, r portsrepo.RateReader) ([]domain.HistoricalRate, error) {
		return r.HistoricalRates(ctx, date, currency)
	})
}

func (s *FallbackSource) TrendRates(ctx context.Context, currencies []string, days int) ([]domain.RateObservation, error) {
	return fetch(ctx, s, "trends", func(ctx context.Context, r portsrepo.RateReader) ([]domain.RateObservation, error) {
		return r.TrendRates(ctx, currencies, days)
	})
}

func (s *FallbackSource) CurrencyRates(ctx context.Context, currency string, days int) ([]domain.RateObservation, error) {
	return fetch(ctx, s, "currency_window", func(ctx context.Context, r portsrepo.RateReader) ([]domain.RateObservation, error) {
		return r.CurrencyRates(ctx, currency, days)
	})
}

func (s *FallbackSource) AverageRates(ctx context.Context) ([]domain.AverageRate, error) {
	return fetch(ctx, s, "averages", func(ctx context.Context, r portsrepo.RateReader) ([]domain.AverageRate, error) {
		return r.AverageRates(ctx)
	})
}

func (s *FallbackSource) RecordRates(ctx context.Context) (domain.Records, error) {
	return fetch(ctx, s, "records", func(ctx context.Context, r portsrepo.RateReader) (domain.Records, error) {
		return r.RecordRates(ctx)
	})
}

func (s *FallbackSource) Currencies(ctx context.Context) ([]string, error) {
	return fetch(ctx, s, "currencies", func(ctx context.Context, r portsrepo.RateReader) ([]string, error) {
		return r.Currencies(ctx)
	})
}

func (s *FallbackSource) DateRange(ctx context.Context) (domain.DateRange, error) {
	return fetch(ctx, s, "date_range", func(ctx context.Context, r portsrepo.RateReader) (domain.DateRange, error) {
		return r.DateRange(ctx)
	})
}
