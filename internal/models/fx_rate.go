package models

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FXRateDaily is a row of the daily rates table.
type FXRateDaily struct {
	Date        domain.Date     `db:"date"`
	Currency    string          `db:"currency"`
	BuyingRate  decimal.Decimal `db:"buying_rate"`
	CentralRate decimal.Decimal `db:"central_rate"`
	SellingRate decimal.Decimal `db:"selling_rate"`
}

// FXRateAtDate is a central rate projected as "rate" (latest and record queries).
type FXRateAtDate struct {
	Date     domain.Date     `db:"date"`
	Currency string          `db:"currency"`
	Rate     decimal.Decimal `db:"rate"`
}

// FXRateSnapshot is a historical-view row.
type FXRateSnapshot struct {
	Date        domain.Date     `db:"date"`
	Currency    string          `db:"currency"`
	Rate        decimal.Decimal `db:"rate"`
	BuyingRate  decimal.Decimal `db:"buying_rate"`
	SellingRate decimal.Decimal `db:"selling_rate"`
}

// FXRateAverage is a per-currency averages row. Either mean is NULL when no row falls in its window.
type FXRateAverage struct {
	Currency   string              `db:"currency"`
	MonthlyAvg decimal.NullDecimal `db:"monthly_avg"`
	YearlyAvg  decimal.NullDecimal `db:"yearly_avg"`
}

// FXDateBounds is the MIN/MAX date pair; both NULL on an empty table.
type FXDateBounds struct {
	MinDate *domain.Date `db:"min_date"`
	MaxDate *domain.Date `db:"max_date"`
}
