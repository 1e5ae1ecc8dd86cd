package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/platform/metrics"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	views portssvc.RateViewSvcFacade
}

// NewDashboardService creates the aggregator over the view resolvers.
func NewDashboardService(views portssvc.RateViewSvcFacade) portssvc.DashboardSvcFacade {
	return &dashboardService{views: views}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// Resolve validates the requested views, runs them concurrently and waits for all of them.
// The first failing view cancels the others and fails the batch.
func (s *dashboardService) Resolve(ctx context.Context, req domain.ViewRequest) (domain.AggregateResponse, error) {
	views := domain.UniqueViews(req.Views)
	if len(views) == 0 {
		return nil, apperrors.NewValidationError("at least one view must be requested")
	}
	for _, v := range views {
		if !v.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown view %q", v))
		}
	}

	var mu sync.Mutex
	result := make(domain.AggregateResponse, len(views))
	g, gctx := errgroup.WithContext(ctx)
	for _, view := range views {
		g.Go(func() error {
			start := time.Now()
			payload, err := s.resolveView(gctx, view, req)
			status := "ok"
			if err != nil {
				status = "error"
			}
			metrics.ViewDuration.WithLabelValues(string(view), status).Observe(time.Since(start).Seconds())
			if err != nil {
				s.LogError(ctx, err, "View resolution failed", slog.String("view", string(view)))
				return fmt.Errorf("view %s: %w", view, err)
			}

			mu.Lock()
			result[view] = payload
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Views resolved", slog.Int("count", len(result)))
	return result, nil
}

func (s *dashboardService) resolveView(ctx context.Context, view domain.ViewName, req domain.ViewRequest) (any, error) {
	switch view {
	case domain.ViewLatest:
		rows, err := s.views.Latest(ctx)
		if err != nil {
			return nil, err
		}
		return filterPriority(req.PriorityOnly, rows, func(r domain.LatestRate) string { return r.Currency }), nil
	case domain.ViewTrends:
		return s.views.Trends(ctx, req.Currencies, req.TrendDays)
	case domain.ViewChanges:
		return s.views.Changes(ctx, req.Currency, req.ChangeDays)
	case domain.ViewVolatility:
		return s.views.Volatility(ctx, req.Currency, req.ChangeDays)
	case domain.ViewAverages:
		rows, err := s.views.Averages(ctx)
		if err != nil {
			return nil, err
		}
		return filterPriority(req.PriorityOnly, rows, func(r domain.AverageRate) string { return r.Currency }), nil
	case domain.ViewHistorical:
		rows, err := s.views.Historical(ctx, req.Date, req.ExplorerCurrency)
		if err != nil {
			return nil, err
		}
		return filterPriority(req.PriorityOnly, rows, func(r domain.HistoricalRate) string { return r.Currency }), nil
	case domain.ViewRecords:
		records, err := s.views.Records(ctx)
		if err != nil {
			return nil, err
		}
		byCode := func(r domain.RecordRate) string { return r.Currency }
		return domain.Records{
			Lows:  filterPriority(req.PriorityOnly, records.Lows, byCode),
			Highs: filterPriority(req.PriorityOnly, records.Highs, byCode),
		}, nil
	case domain.ViewCurrencies:
		return s.views.Currencies(ctx)
	case domain.ViewDateRange:
		return s.views.DateRange(ctx)
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown view %q", view))
	}
}

func filterPriority[T any](enabled bool, rows []T, currency func(T) string) []T {
	if !enabled {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if domain.IsPriorityCurrency(currency(r)) {
			out = append(out, r)
		}
	}
	return out
}
