package synthetic

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
)

// Source serves a Dataset through the RateReader port. It never fails.
type Source struct {
	data *Dataset
}

// NewSource wraps data. A nil data uses Default().
func NewSource(data *Dataset) *Source {
	if data == nil {
		data = Default()
	}
	return &Source{data: data}
}

var _ portsrepo.RateReader = (*Source)(nil)

func (s *Source) LatestRates(_ context.Context) ([]domain.LatestRate, error) {
	return s.data.Latest(), nil
}

func (s *Source) HistoricalRates(_ context.Context, date domain.Date, currency string) ([]domain.HistoricalRate, error) {
	return s.data.Historical(date, currency), nil
}

func (s *Source) TrendRates(_ context.Context, currencies []string, days int) ([]domain.RateObservation, error) {
	return s.data.Window(currencies, days), nil
}

func (s *Source) CurrencyRates(_ context.Context, currency string, days int) ([]domain.RateObservation, error) {
	return s.data.Window([]string{currency}, days), nil
}

func (s *Source) AverageRates(_ context.Context) ([]domain.AverageRate, error) {
	return s.data.Averages(), nil
}

func (s *Source) RecordRates(_ context.Context) (domain.Records, error) {
	return s.data.Records(), nil
}

func (s *Source) Currencies(_ context.Context) ([]string, error) {
	return s.data.Currencies(), nil
}

func (s *Source) DateRange(_ context.Context) (domain.DateRange, error) {
	return s.data.DateRange(), nil
}
