package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fx_rates_app/internal/adapters/ratesource"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/core/synthetic"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/handlers"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// downStore fails every read, standing in for an unreachable database.
type downStore struct{}

var errStoreDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func (downStore) LatestRates(context.Context) ([]domain.LatestRate, error) { return nil, errStoreDown }
func (downStore) HistoricalRates(context.Context, domain.Date, string) ([]domain.HistoricalRate, error) {
	return nil, errStoreDown
}
func (downStore) TrendRates(context.Context, []string, int) ([]domain.RateObservation, error) {
	return nil, errStoreDown
}
func (downStore) CurrencyRates(context.Context, string, int) ([]domain.RateObservation, error) {
	return nil, errStoreDown
}
func (downStore) AverageRates(context.Context) ([]domain.AverageRate, error) {
	return nil, errStoreDown
}
func (downStore) RecordRates(context.Context) (domain.Records, error) {
	return domain.Records{}, errStoreDown
}
func (downStore) Currencies(context.Context) ([]string, error) { return nil, errStoreDown }
func (downStore) DateRange(context.Context) (domain.DateRange, error) {
	return domain.DateRange{}, errStoreDown
}

// brokenLatest answers every read from the synthetic dataset except LatestRates.
type brokenLatest struct {
	*synthetic.Source
}

func (brokenLatest) LatestRates(context.Context) ([]domain.LatestRate, error) {
	return nil, errors.New("latest exploded")
}

// --- Test Suite ---
type RatesHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func newRouter(reader portsrepo.RateReader) *gin.Engine {
	cfg := &config.Config{
		IsProduction:       true,
		RateLimit:          "1000-M",
		CORSAllowedOrigins: []string{"*"},
		MaxWindowDays:      365,
	}
	container := services.NewServiceContainer(portsrepo.RepositoryProvider{RateRepo: reader})

	r := gin.New()
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		panic(err)
	}
	return r
}

func (suite *RatesHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *RatesHandlerTestSuite) SetupTest() {
	source := ratesource.NewFallbackSource(downStore{}, synthetic.NewSource(nil), 0)
	suite.router = newRouter(source)
}

func (suite *RatesHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RatesHandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *RatesHandlerTestSuite) TestLatest_USDScenario() {
	w := suite.get("/api/rates?type=latest")
	suite.Require().Equal(http.StatusOK, w.Code)

	var rows []struct {
		Date     string  `json:"date"`
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate,string"`
	}
	suite.decode(w, &rows)

	var usd int
	for _, r := range rows {
		suite.Equal("2024-11-27", r.Date)
		if r.Currency == "USD" {
			usd++
			suite.GreaterOrEqual(r.Rate, 1650*0.94)
			suite.LessOrEqual(r.Rate, 1650*1.06)
		}
	}
	suite.Equal(1, usd)
}

func (suite *RatesHandlerTestSuite) TestDefaultViewIsLatest() {
	w := suite.get("/api/rates")
	suite.Require().Equal(http.StatusOK, w.Code)

	var rows []map[string]any
	suite.decode(w, &rows)
	suite.Len(rows, 8)
}

func (suite *RatesHandlerTestSuite) TestLatestAndTrendsKeys() {
	w := suite.get("/api/rates?types=latest,trends")
	suite.Require().Equal(http.StatusOK, w.Code)

	var body map[string][]map[string]any
	suite.decode(w, &body)
	suite.Len(body, 2)
	suite.Contains(body, "latest")
	suite.Contains(body, "trends")

	for _, key := range []string{"date", "currency", "rate"} {
		suite.Contains(body["latest"][0], key)
	}
	for _, key := range []string{"date", "currency", "buying_rate", "central_rate", "selling_rate", "sma_10", "ema_10"} {
		suite.Contains(body["trends"][0], key)
	}
	suite.Nil(body["trends"][0]["sma_10"], "first rows precede the moving-average period")
}

func (suite *RatesHandlerTestSuite) TestCurrenciesRoundTrip() {
	var alone []string
	suite.decode(suite.get("/api/rates?types=currencies"), &alone)

	var combined struct {
		Currencies []string        `json:"currencies"`
		DateRange  json.RawMessage `json:"date-range"`
	}
	suite.decode(suite.get("/api/rates?types=currencies,date-range"), &combined)

	suite.NotEmpty(alone)
	suite.Equal(alone, combined.Currencies)
	suite.JSONEq(`{"min_date":"2023-11-28","max_date":"2024-11-27"}`, string(combined.DateRange))
}

func (suite *RatesHandlerTestSuite) TestHistoricalWithoutDateIsEmptyArray() {
	w := suite.get("/api/rates?type=historical&explorer_currency=All")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *RatesHandlerTestSuite) TestHistoricalWithDate() {
	w := suite.get("/api/rates?type=historical&date=2024-06-03&explorer_currency=eur")
	suite.Require().Equal(http.StatusOK, w.Code)

	var rows []map[string]any
	suite.decode(w, &rows)
	suite.Require().Len(rows, 1)
	suite.Equal("EUR", rows[0]["currency"])
	suite.Equal("2024-06-03", rows[0]["date"])
}

func (suite *RatesHandlerTestSuite) TestFallbackEquivalence_EveryViewNonEmpty() {
	url := "/api/v1/rates?types=latest,trends,changes,averages,volatility,historical,records,currencies,date-range&date=2024-11-27"
	w := suite.get(url)
	suite.Require().Equal(http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	suite.decode(w, &body)
	suite.Len(body, len(domain.AllViews))

	columns := map[string][]string{
		"latest":     {"date", "currency", "rate"},
		"trends":     {"date", "currency", "buying_rate", "central_rate", "selling_rate", "sma_10", "ema_10"},
		"changes":    {"date", "currency", "central_rate", "change"},
		"averages":   {"currency", "monthly_avg", "yearly_avg"},
		"historical": {"date", "currency", "rate", "buying_rate", "selling_rate"},
	}
	for view, keys := range columns {
		var rows []map[string]any
		suite.Require().NoError(json.Unmarshal(body[view], &rows), view)
		suite.Require().NotEmpty(rows, view)
		for _, key := range keys {
			suite.Contains(rows[0], key, view)
		}
	}

	var currencies []string
	suite.Require().NoError(json.Unmarshal(body["currencies"], &currencies))
	suite.NotEmpty(currencies)
	suite.IsNonDecreasing(currencies)

	var dateRange map[string]string
	suite.Require().NoError(json.Unmarshal(body["date-range"], &dateRange))
	suite.Equal("2024-11-27", dateRange["max_date"])

	var records struct {
		Lows  []map[string]any `json:"lows"`
		Highs []map[string]any `json:"highs"`
	}
	suite.Require().NoError(json.Unmarshal(body["records"], &records))
	suite.Len(records.Lows, 8)
	suite.Len(records.Highs, 8)

	var volatility struct {
		Currency         string           `json:"currency"`
		InsufficientData bool             `json:"insufficient_data"`
		Points           []map[string]any `json:"points"`
	}
	suite.Require().NoError(json.Unmarshal(body["volatility"], &volatility))
	suite.Equal("USD", volatility.Currency)
	suite.False(volatility.InsufficientData)
	suite.Len(volatility.Points, 31)
}

func (suite *RatesHandlerTestSuite) TestV1AlwaysKeyed() {
	w := suite.get("/api/v1/rates?type=currencies")
	suite.Require().Equal(http.StatusOK, w.Code)

	var body map[string][]string
	suite.decode(w, &body)
	suite.Contains(body, "currencies")
}

func (suite *RatesHandlerTestSuite) TestWindowClamping() {
	var rows []map[string]any

	suite.decode(suite.get("/api/rates?type=changes&days=abc"), &rows)
	suite.Len(rows, 31)

	suite.decode(suite.get("/api/rates?type=changes&change_days=0"), &rows)
	suite.Len(rows, 2)

	suite.decode(suite.get("/api/rates?type=changes&days=100000"), &rows)
	suite.Len(rows, 366, "clamped to the configured ceiling, which covers the whole dataset")
}

func (suite *RatesHandlerTestSuite) TestBadParametersReturn400() {
	for _, url := range []string{
		"/api/rates?type=historical&date=2024-13-45",
		"/api/rates?type=latest&currency=DOLLARS",
		"/api/rates?type=changes&currency=All",
		"/api/rates?types=latest,forecast",
		"/api/rates?type=trends&currencies=usd,euro",
	} {
		w := suite.get(url)
		suite.Equal(http.StatusBadRequest, w.Code, url)

		var body dto.ErrorResponse
		suite.decode(w, &body)
		suite.Equal("Invalid query parameters", body.Error, url)
	}
}

func (suite *RatesHandlerTestSuite) TestViewFailureReturns500() {
	router := newRouter(brokenLatest{Source: synthetic.NewSource(nil)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rates?types=latest,currencies", nil))

	suite.Equal(http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	suite.decode(w, &body)
	suite.Equal("Failed to fetch data", body.Error)
	suite.Equal(dto.ErrorHint, body.Hint)
	suite.Contains(body.Details, "latest exploded")
}

func (suite *RatesHandlerTestSuite) TestHealthAndMetrics() {
	suite.Equal(http.StatusOK, suite.get("/health").Code)

	suite.get("/api/rates?type=currencies")
	w := suite.get("/metrics")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "fxrates_source_fallbacks_total")
}

func TestRatesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatesHandlerTestSuite))
}
