package mapping

import (
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/models"
)

// ToDomainRateObservation converts a table row to a domain RateObservation.
func ToDomainRateObservation(m models.FXRateDaily) domain.RateObservation {
	return domain.RateObservation{
		Date:        m.Date,
		Currency:    strings.ToUpper(m.Currency),
		BuyingRate:  m.BuyingRate,
		CentralRate: m.CentralRate,
		SellingRate: m.SellingRate,
	}
}

// ToDomainRateObservations converts rows, never returning nil.
func ToDomainRateObservations(ms []models.FXRateDaily) []domain.RateObservation {
	out := make([]domain.RateObservation, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRateObservation(m)
	}
	return out
}

// ToDomainLatestRates converts latest-rate rows.
func ToDomainLatestRates(ms []models.FXRateAtDate) []domain.LatestRate {
	out := make([]domain.LatestRate, len(ms))
	for i, m := range ms {
		out[i] = domain.LatestRate{
			Date:     m.Date,
			Currency: strings.ToUpper(m.Currency),
			Rate:     m.Rate,
		}
	}
	return out
}

// ToDomainRecordRates converts record rows.
func ToDomainRecordRates(ms []models.FXRateAtDate) []domain.RecordRate {
	out := make([]domain.RecordRate, len(ms))
	for i, m := range ms {
		out[i] = domain.RecordRate{
			Currency: strings.ToUpper(m.Currency),
			Date:     m.Date,
			Rate:     m.Rate,
		}
	}
	return out
}

// ToDomainHistoricalRates converts snapshot rows.
func ToDomainHistoricalRates(ms []models.FXRateSnapshot) []domain.HistoricalRate {
	out := make([]domain.HistoricalRate, len(ms))
	for i, m := range ms {
		out[i] = domain.HistoricalRate{
			Date:        m.Date,
			Currency:    strings.ToUpper(m.Currency),
			Rate:        m.Rate,
			BuyingRate:  m.BuyingRate,
			SellingRate: m.SellingRate,
		}
	}
	return out
}

// ToDomainAverageRates converts averages rows.
func ToDomainAverageRates(ms []models.FXRateAverage) []domain.AverageRate {
	out := make([]domain.AverageRate, len(ms))
	for i, m := range ms {
		out[i] = domain.AverageRate{
			Currency:   strings.ToUpper(m.Currency),
			MonthlyAvg: m.MonthlyAvg,
			YearlyAvg:  m.YearlyAvg,
		}
	}
	return out
}

// ToDomainDateRange converts the MIN/MAX pair. NULL bounds stay nil.
func ToDomainDateRange(m models.FXDateBounds) domain.DateRange {
	return domain.DateRange{MinDate: m.MinDate, MaxDate: m.MaxDate}
}
