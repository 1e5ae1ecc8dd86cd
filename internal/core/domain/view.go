package domain

import (
	"slices"
	"strings"
)

// ViewName identifies one analytic view of the rates endpoint.
type ViewName string

const (
	ViewLatest     ViewName = "latest"
	ViewTrends     ViewName = "trends"
	ViewChanges    ViewName = "changes"
	ViewAverages   ViewName = "averages"
	ViewVolatility ViewName = "volatility"
	ViewHistorical ViewName = "historical"
	ViewRecords    ViewName = "records"
	ViewCurrencies ViewName = "currencies"
	ViewDateRange  ViewName = "date-range"
)

// AllViews lists every supported view.
var AllViews = []ViewName{
	ViewLatest, ViewTrends, ViewChanges, ViewAverages, ViewVolatility,
	ViewHistorical, ViewRecords, ViewCurrencies, ViewDateRange,
}

// IsValid reports whether v is a supported view.
func (v ViewName) IsValid() bool {
	return slices.Contains(AllViews, v)
}

// UniqueViews drops duplicates and keeps first-seen order.
func UniqueViews(views []ViewName) []ViewName {
	seen := make(map[ViewName]struct{}, len(views))
	out := make([]ViewName, 0, len(views))
	for _, v := range views {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

const (
	// AllCurrencies disables the currency filter of the historical view.
	AllCurrencies = "All"

	DefaultCurrency   = "USD"
	DefaultWindowDays = 30

	// AveragesMonthlyDays and AveragesYearlyDays bound the averages view.
	AveragesMonthlyDays = 30
	AveragesYearlyDays  = 365

	// VolatilityWindow is the rolling window of the volatility view, independent of the requested days.
	VolatilityWindow = 30

	// MovingAveragePeriod is the SMA/EMA period attached to trend rows.
	MovingAveragePeriod = 10
)

// DefaultCurrencies is the trends selection when none is requested.
var DefaultCurrencies = []string{"USD", "EUR", "GBP"}

// PriorityCurrencies are the tracked currencies surfaced by the dashboard.
var PriorityCurrencies = []string{"USD", "GBP", "EUR", "CAD", "CNY", "JPY"}

// IsPriorityCurrency reports whether code belongs to PriorityCurrencies.
func IsPriorityCurrency(code string) bool {
	return slices.Contains(PriorityCurrencies, strings.ToUpper(code))
}

// ViewRequest is the parameter bag shared by every view of one request.
type ViewRequest struct {
	Views            []ViewName
	Currencies       []string
	TrendDays        int
	ChangeDays       int
	Currency         string
	ExplorerCurrency string
	Date             *Date
	PriorityOnly     bool
}

// AggregateResponse maps each requested view to its payload.
type AggregateResponse map[ViewName]any

// Single returns the only payload when exactly one view was resolved.
func (r AggregateResponse) Single() (any, bool) {
	if len(r) != 1 {
		return nil, false
	}
	for _, payload := range r {
		return payload, true
	}
	return nil, false
}
