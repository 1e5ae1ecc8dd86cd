package dto

import (
	"errors"
	"strconv"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// DefaultMaxWindowDays caps trailing windows when no ceiling is configured.
const DefaultMaxWindowDays = 3650

// ErrorHint is attached to every failed rates response.
const ErrorHint = "Make sure PGSQL_URL is set correctly"

// RatesQuery is the query string of the rates endpoint.
// Window sizes are strings so that malformed values clamp to the default instead of failing binding.
type RatesQuery struct {
	Types            string `form:"types"`
	Type             string `form:"type"`
	Currencies       string `form:"currencies" binding:"omitempty,currency_list"`
	TrendDays        string `form:"trend_days"`
	ChangeDays       string `form:"change_days"`
	Days             string `form:"days"`
	Currency         string `form:"currency" binding:"omitempty,currency_code"`
	ExplorerCurrency string `form:"explorer_currency" binding:"omitempty,currency_filter"`
	Date             string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	PriorityOnly     bool   `form:"priority_only"`
}

// ErrorResponse is the body of a failed rates request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// ViewNames returns the requested views: types, else type, else latest.
// Names are trimmed and lower-cased; blanks are dropped.
func (q RatesQuery) ViewNames() []domain.ViewName {
	raw := q.Types
	if strings.TrimSpace(raw) == "" {
		raw = q.Type
	}
	names := splitList(raw, strings.ToLower)
	if len(names) == 0 {
		return []domain.ViewName{domain.ViewLatest}
	}
	views := make([]domain.ViewName, len(names))
	for i, n := range names {
		views[i] = domain.ViewName(n)
	}
	return views
}

// ToViewRequest converts the query into the shared parameter bag of the views.
func (q RatesQuery) ToViewRequest(maxWindowDays int) (domain.ViewRequest, error) {
	if maxWindowDays < 1 {
		maxWindowDays = DefaultMaxWindowDays
	}

	req := domain.ViewRequest{
		Views:            q.ViewNames(),
		Currencies:       splitList(q.Currencies, strings.ToUpper),
		TrendDays:        ParseWindowDays(firstNonBlank(q.TrendDays, q.Days), maxWindowDays),
		ChangeDays:       ParseWindowDays(firstNonBlank(q.ChangeDays, q.Days), maxWindowDays),
		Currency:         strings.ToUpper(firstNonBlank(q.Currency, domain.DefaultCurrency)),
		ExplorerCurrency: firstNonBlank(q.ExplorerCurrency, domain.AllCurrencies),
		PriorityOnly:     q.PriorityOnly,
	}
	if len(req.Currencies) == 0 {
		req.Currencies = domain.DefaultCurrencies
	}
	if strings.EqualFold(req.ExplorerCurrency, domain.AllCurrencies) {
		req.ExplorerCurrency = domain.AllCurrencies
	} else {
		req.ExplorerCurrency = strings.ToUpper(req.ExplorerCurrency)
	}

	if date := strings.TrimSpace(q.Date); date != "" {
		d, err := domain.ParseDate(date)
		if err != nil {
			return domain.ViewRequest{}, apperrors.NewValidationError("date must be formatted as YYYY-MM-DD")
		}
		req.Date = &d
	}
	return req, nil
}

// ParseWindowDays reads a trailing window size. Blank or non-numeric input yields
// domain.DefaultWindowDays; the result, including integers too large for an int, is clamped to [1, maxDays].
func ParseWindowDays(raw string, maxDays int) int {
	raw = strings.TrimSpace(raw)
	days, err := strconv.Atoi(raw)
	switch {
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(raw, "-"):
		days = 1
	case errors.Is(err, strconv.ErrRange):
		days = maxDays
	case err != nil:
		days = domain.DefaultWindowDays
	}
	if days < 1 {
		days = 1
	}
	if days > maxDays {
		days = maxDays
	}
	return days
}

func splitList(raw string, normalize func(string) string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, normalize(part))
		}
	}
	return out
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
