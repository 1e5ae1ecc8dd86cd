package dto_test

import (
	"testing"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowDays(t *testing.T) {
	cases := map[string]int{
		"":                      30,
		"abc":                   30,
		"NaN":                   30,
		"7":                     7,
		" 14 ":                  14,
		"0":                     1,
		"-5":                    1,
		"99999":                 365,
		"99999999999999999999":  365,
		"-99999999999999999999": 1,
	}
	for raw, want := range cases {
		assert.Equal(t, want, dto.ParseWindowDays(raw, 365), "raw=%q", raw)
	}
}

func TestViewNames(t *testing.T) {
	assert.Equal(t, []domain.ViewName{domain.ViewLatest}, dto.RatesQuery{}.ViewNames())
	assert.Equal(t, []domain.ViewName{domain.ViewRecords}, dto.RatesQuery{Type: "records"}.ViewNames())
	assert.Equal(t,
		[]domain.ViewName{domain.ViewLatest, domain.ViewTrends},
		dto.RatesQuery{Types: " Latest, ,trends", Type: "records"}.ViewNames(),
	)
}

func TestToViewRequest_Defaults(t *testing.T) {
	req, err := dto.RatesQuery{}.ToViewRequest(0)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrencies, req.Currencies)
	assert.Equal(t, 30, req.TrendDays)
	assert.Equal(t, 30, req.ChangeDays)
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, domain.AllCurrencies, req.ExplorerCurrency)
	assert.Nil(t, req.Date)
	assert.False(t, req.PriorityOnly)
}

func TestToViewRequest_SharedDaysFallback(t *testing.T) {
	req, err := dto.RatesQuery{Days: "90", ChangeDays: "7"}.ToViewRequest(365)

	require.NoError(t, err)
	assert.Equal(t, 90, req.TrendDays)
	assert.Equal(t, 7, req.ChangeDays)
}

func TestToViewRequest_Normalizes(t *testing.T) {
	req, err := dto.RatesQuery{
		Currencies:       "usd, cad,",
		Currency:         "gbp",
		ExplorerCurrency: "all",
		Date:             "2024-06-03",
		PriorityOnly:     true,
	}.ToViewRequest(365)

	require.NoError(t, err)
	assert.Equal(t, []string{"USD", "CAD"}, req.Currencies)
	assert.Equal(t, "GBP", req.Currency)
	assert.Equal(t, domain.AllCurrencies, req.ExplorerCurrency)
	require.NotNil(t, req.Date)
	assert.Equal(t, "2024-06-03", req.Date.String())
	assert.True(t, req.PriorityOnly)

	req, err = dto.RatesQuery{ExplorerCurrency: "eur"}.ToViewRequest(365)
	require.NoError(t, err)
	assert.Equal(t, "EUR", req.ExplorerCurrency)
}

func TestToViewRequest_BadDate(t *testing.T) {
	_, err := dto.RatesQuery{Date: "03/06/2024"}.ToViewRequest(365)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidators_CurrencyTags(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())

	valid := []dto.RatesQuery{
		{Currency: "usd"},
		{ExplorerCurrency: "All"},
		{ExplorerCurrency: "eur"},
		{Currencies: "USD, eur,"},
	}
	for _, q := range valid {
		assert.NoError(t, binding.Validator.ValidateStruct(q), "%+v", q)
	}

	invalid := []dto.RatesQuery{
		{Currency: "All"},
		{Currency: "DOLLARS"},
		{ExplorerCurrency: "Everything"},
		{Currencies: "usd,euro"},
		{Currencies: "all"},
	}
	for _, q := range invalid {
		assert.Error(t, binding.Validator.ValidateStruct(q), "%+v", q)
	}
}
