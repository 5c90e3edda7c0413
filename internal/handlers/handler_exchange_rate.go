package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to stored exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchangeRates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
	}
	exchangeRate := rg.Group("/exchangeRate")
	{
		exchangeRate.GET("/:pair", h.getExchangeRate)
		exchangeRate.PATCH("/:pair", h.updateExchangeRate)
	}
}

// createExchangeRate stores a rate for a new ordered pair.
// Responds 201, 400 on an invalid rate, 404 when a currency is not stored, 409 when the pair exists.
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("base", req.BaseCurrencyCode),
		slog.String("target", req.TargetCurrencyCode),
		slog.String("rate", req.Rate),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.Int64("rate_id", createdRate.ID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// listExchangeRates retrieves all stored rates.
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRate retrieves the rate stored for a pair code such as USDEUR.
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pairCode := c.Param("pair")

	logger = logger.With(slog.String("pair", pairCode))
	logger.Info("Received request to get exchange rate")

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), pairCode)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateExchangeRate replaces the rate of a stored pair from the rate form field.
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pairCode := c.Param("pair")

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("pair", pairCode))
	logger.Info("Received request to update exchange rate", slog.String("rate", req.Rate))

	rate, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), pairCode, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update exchange rate")
		return
	}

	logger.Info("Exchange rate updated successfully", slog.Int64("rate_id", rate.ID))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
