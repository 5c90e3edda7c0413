package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)
	rg.GET("/exchange", h.exchange)
}

// exchange converts ?amount= of ?from= into ?to= using a direct, reverse or cross rate.
func (h *exchangeHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received exchange request",
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.String("amount", req.Amount),
	)

	result, err := h.exchangeService.Exchange(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to exchange currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeResponse(result))
}
