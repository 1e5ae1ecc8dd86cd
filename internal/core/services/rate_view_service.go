package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/core/analytics"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
)

type rateViewService struct {
	BaseService
	rates portsrepo.RateReader
}

// NewRateViewService creates the view resolvers over rates.
func NewRateViewService(rates portsrepo.RateReader) portssvc.RateViewSvcFacade {
	return &rateViewService{rates: rates}
}

var _ portssvc.RateViewSvcFacade = (*rateViewService)(nil)

func (s *rateViewService) Latest(ctx context.Context) ([]domain.LatestRate, error) {
	rows, err := s.rates.LatestRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest rates: %w", err)
	}
	return orEmpty(rows), nil
}

func (s *rateViewService) Historical(ctx context.Context, date *domain.Date, currency string) ([]domain.HistoricalRate, error) {
	if date == nil || date.IsZero() {
		return []domain.HistoricalRate{}, nil
	}
	rows, err := s.rates.HistoricalRates(ctx, *date, currency)
	if err != nil {
		return nil, fmt.Errorf("historical rates at %s: %w", date, err)
	}
	return orEmpty(rows), nil
}

func (s *rateViewService) Trends(ctx context.Context, currencies []string, days int) ([]domain.TrendRow, error) {
	if len(currencies) == 0 {
		currencies = domain.DefaultCurrencies
	}
	obs, err := s.rates.TrendRates(ctx, currencies, days)
	if err != nil {
		return nil, fmt.Errorf("trend rates: %w", err)
	}

	codes, byCurrency := analytics.SeriesByCurrency(obs)
	rows := make([]domain.TrendRow, 0, len(obs))
	for _, code := range codes {
		series := byCurrency[code]
		central := analytics.CentralRates(series)
		sma := analytics.SMA(central, domain.MovingAveragePeriod)
		ema := analytics.EMA(central, domain.MovingAveragePeriod)
		for i, o := range series {
			rows = append(rows, domain.TrendRow{RateObservation: o, SMA: sma[i], EMA: ema[i]})
		}
	}
	return rows, nil
}

func (s *rateViewService) currencySeries(ctx context.Context, currency string, days int) ([]domain.RateObservation, error) {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	obs, err := s.rates.CurrencyRates(ctx, currency, days)
	if err != nil {
		return nil, fmt.Errorf("rates of %s: %w", strings.ToUpper(currency), err)
	}
	return analytics.SortSeries(obs), nil
}

func (s *rateViewService) Changes(ctx context.Context, currency string, days int) ([]domain.ChangeRow, error) {
	series, err := s.currencySeries(ctx, currency, days)
	if err != nil {
		return nil, err
	}

	changes := analytics.PercentChange(analytics.CentralRates(series))
	rows := make([]domain.ChangeRow, 0, len(changes))
	for _, c := range changes {
		o := series[c.Index]
		rows = append(rows, domain.ChangeRow{
			Date:        o.Date,
			Currency:    o.Currency,
			CentralRate: o.CentralRate,
			Change:      c.Percent,
		})
	}
	return rows, nil
}

// Volatility always uses domain.VolatilityWindow; days only bounds the fetched series.
func (s *rateViewService) Volatility(ctx context.Context, currency string, days int) (domain.VolatilityReport, error) {
	series, err := s.currencySeries(ctx, currency, days)
	if err != nil {
		return domain.VolatilityReport{}, err
	}

	code := strings.ToUpper(currency)
	if code == "" {
		code = domain.DefaultCurrency
	}
	report := domain.VolatilityReport{
		Currency:       code,
		Window:         domain.VolatilityWindow,
		RequiredPoints: domain.VolatilityWindow,
		Points:         make([]domain.VolatilityPoint, len(series)),
	}

	window, ok := analytics.EffectiveWindow(len(series), domain.VolatilityWindow)
	report.InsufficientData = !ok
	var stddev []domain.NullFloat64
	if ok {
		stddev = analytics.RollingStdDev(analytics.CentralRates(series), window)
	} else {
		s.LogDebug(ctx, "Not enough history for volatility",
			"currency", code, "points", len(series), "required", domain.VolatilityWindow)
	}

	for i, o := range series {
		point := domain.VolatilityPoint{Date: o.Date, CentralRate: o.CentralRate}
		if stddev != nil {
			point.Volatility = stddev[i]
		}
		report.Points[i] = point
	}
	return report, nil
}

func (s *rateViewService) Averages(ctx context.Context) ([]domain.AverageRate, error) {
	rows, err := s.rates.AverageRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("average rates: %w", err)
	}
	return orEmpty(rows), nil
}

func (s *rateViewService) Records(ctx context.Context) (domain.Records, error) {
	records, err := s.rates.RecordRates(ctx)
	if err != nil {
		return domain.Records{}, fmt.Errorf("record rates: %w", err)
	}
	return domain.Records{Lows: orEmpty(records.Lows), Highs: orEmpty(records.Highs)}, nil
}

func (s *rateViewService) Currencies(ctx context.Context) ([]string, error) {
	codes, err := s.rates.Currencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("currencies: %w", err)
	}
	return orEmpty(codes), nil
}

func (s *rateViewService) DateRange(ctx context.Context) (domain.DateRange, error) {
	dr, err := s.rates.DateRange(ctx)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("date range: %w", err)
	}
	return dr, nil
}

// orEmpty keeps empty results encoding as [] rather than null.
func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
