package domain

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// RateObservation is one daily quote for a currency against the base currency.
// (Date, Currency) is the natural key.
type RateObservation struct {
	Date        Date            `json:"date"`
	Currency    string          `json:"currency"`
	BuyingRate  decimal.Decimal `json:"buying_rate"`
	CentralRate decimal.Decimal `json:"central_rate"`
	SellingRate decimal.Decimal `json:"selling_rate"`
}

// LatestRate is the central rate of a currency on the most recent date.
type LatestRate struct {
	Date     Date            `json:"date"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// HistoricalRate is a single-date snapshot row.
type HistoricalRate struct {
	Date        Date            `json:"date"`
	Currency    string          `json:"currency"`
	Rate        decimal.Decimal `json:"rate"`
	BuyingRate  decimal.Decimal `json:"buying_rate"`
	SellingRate decimal.Decimal `json:"selling_rate"`
}

// AverageRate holds the trailing 30 and 365 day means of the central rate.
// A mean is null when the currency has no observation inside that window.
type AverageRate struct {
	Currency   string              `json:"currency"`
	MonthlyAvg decimal.NullDecimal `json:"monthly_avg"`
	YearlyAvg  decimal.NullDecimal `json:"yearly_avg"`
}

// RecordRate is an all-time extreme of a currency's central rate.
type RecordRate struct {
	Currency string          `json:"currency"`
	Date     Date            `json:"date"`
	Rate     decimal.Decimal `json:"rate"`
}

// Records groups the all-time lows and highs, one row per currency each.
type Records struct {
	Lows  []RecordRate `json:"lows"`
	Highs []RecordRate `json:"highs"`
}

// DateRange is the first and last date present in the store. Both are nil when the store is empty.
type DateRange struct {
	MinDate *Date `json:"min_date"`
	MaxDate *Date `json:"max_date"`
}

// NullFloat64 is a derived value that may be undefined, e.g. a moving average before its window fills.
// It encodes as null when not valid.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// Float wraps a defined value. Non-finite inputs produce an undefined value.
func Float(v float64) NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NullFloat64{}
	}
	return NullFloat64{Float64: v, Valid: true}
}

func (n NullFloat64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Float64, 'f', -1, 64), nil
}

func (n *NullFloat64) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullFloat64{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}

// TrendRow is a trend observation with the currency's moving averages at that date.
type TrendRow struct {
	RateObservation
	SMA NullFloat64 `json:"sma_10"`
	EMA NullFloat64 `json:"ema_10"`
}

// ChangeRow is a central rate with its percent change from the previous observation.
type ChangeRow struct {
	Date        Date            `json:"date"`
	Currency    string          `json:"currency"`
	CentralRate decimal.Decimal `json:"central_rate"`
	Change      float64         `json:"change"`
}

// VolatilityPoint is a central rate with the rolling standard deviation ending at that date.
type VolatilityPoint struct {
	Date        Date            `json:"date"`
	CentralRate decimal.Decimal `json:"central_rate"`
	Volatility  NullFloat64     `json:"volatility"`
}

// VolatilityReport is the volatility view payload. InsufficientData is set when the series
// is shorter than RequiredPoints; Points then carry rates only.
type VolatilityReport struct {
	Currency         string            `json:"currency"`
	Window           int               `json:"window"`
	RequiredPoints   int               `json:"required_points"`
	InsufficientData bool              `json:"insufficient_data"`
	Points           []VolatilityPoint `json:"points"`
}
