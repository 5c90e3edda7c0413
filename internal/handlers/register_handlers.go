package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/currency_exchange/internal/core/ports"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/SscSPs/currency_exchange/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	registry ports.CurrencyRegistry,
) error {
	if err := registerValidators(registry); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/api/v1")

	if cfg.RateLimit != "" {
		limiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		v1.Use(middleware.RateLimit(limiter))
	}

	registerCurrencyRoutes(v1, services.Currency)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerExchangeRoutes(v1, services.Exchange)
	return nil
}
