package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ratesHandler serves the aggregated analytic views.
type ratesHandler struct {
	dashboard     portssvc.DashboardSvcFacade
	maxWindowDays int
}

func newRatesHandler(dashboard portssvc.DashboardSvcFacade, maxWindowDays int) *ratesHandler {
	return &ratesHandler{dashboard: dashboard, maxWindowDays: maxWindowDays}
}

// registerRateRoutes registers the legacy route on api and the keyed-map route on v1.
func registerRateRoutes(api, v1 *gin.RouterGroup, dashboard portssvc.DashboardSvcFacade, maxWindowDays int) {
	h := newRatesHandler(dashboard, maxWindowDays)
	api.GET("/rates", h.getRates)
	v1.GET("/rates", h.getRatesV1)
}

// getRates godoc
// @Summary Fetch analytic rate views
// @Description Resolves the requested views concurrently. A single requested view returns its payload directly; several views return an object keyed by view name.
// @Tags rates
// @Produce json
// @Param types query string false "Comma-separated views: latest, trends, changes, averages, volatility, historical, records, currencies, date-range"
// @Param type query string false "Single view, used when types is empty" default(latest)
// @Param currencies query string false "Comma-separated currencies for trends" default(USD,EUR,GBP)
// @Param trend_days query string false "Trailing window of trends; falls back to days" default(30)
// @Param change_days query string false "Trailing window of changes and volatility; falls back to days" default(30)
// @Param days query string false "Shared trailing window" default(30)
// @Param currency query string false "Currency of changes and volatility" default(USD)
// @Param explorer_currency query string false "Currency filter of historical, or All" default(All)
// @Param date query string false "Date of historical (YYYY-MM-DD)"
// @Param priority_only query bool false "Restrict latest, averages, records and historical to the priority currencies"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch data"
// @Router /api/rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	resp, ok := h.resolve(c)
	if !ok {
		return
	}
	if payload, single := resp.Single(); single {
		c.JSON(http.StatusOK, payload)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getRatesV1 godoc
// @Summary Fetch analytic rate views as a keyed object
// @Description Same parameters as /api/rates, but the response is always an object keyed by view name.
// @Tags rates
// @Produce json
// @Param types query string false "Comma-separated views"
// @Param type query string false "Single view, used when types is empty" default(latest)
// @Param currencies query string false "Comma-separated currencies for trends" default(USD,EUR,GBP)
// @Param days query string false "Shared trailing window" default(30)
// @Param currency query string false "Currency of changes and volatility" default(USD)
// @Param explorer_currency query string false "Currency filter of historical, or All" default(All)
// @Param date query string false "Date of historical (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch data"
// @Router /api/v1/rates [get]
func (h *ratesHandler) getRatesV1(c *gin.Context) {
	resp, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// resolve binds the query and runs the views. It writes the error response itself and reports false on failure.
func (h *ratesHandler) resolve(c *gin.Context) (domain.AggregateResponse, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.RatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind rates query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return nil, false
	}

	req, err := query.ToViewRequest(h.maxWindowDays)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}

	logger.Debug("Resolving rate views",
		slog.Any("views", req.Views),
		slog.Int("trend_days", req.TrendDays),
		slog.Int("change_days", req.ChangeDays),
	)

	resp, err := h.dashboard.Resolve(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	return resp, true
}

func (h *ratesHandler) writeError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Rejected rates request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters", Details: safeMessage(err)})
		return
	}

	logger.Error("Failed to fetch rate views", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Failed to fetch data",
		Details: safeMessage(err),
		Hint:    dto.ErrorHint,
	})
}

// safeMessage prefers the message of an AppError over the full wrapped chain.
func safeMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
