package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange/internal/core/registry"
	"github.com/SscSPs/currency_exchange/internal/core/services"
	"github.com/SscSPs/currency_exchange/internal/handlers"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/SscSPs/currency_exchange/internal/repositories/cache"
	"github.com/SscSPs/currency_exchange/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_exchange/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var skipMigrations bool

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "start without applying database migrations")
	return cmd
}

func serve(ctx context.Context) error {
	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if !skipMigrations {
		if err := runMigrations(); err != nil {
			return err
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	if cfg.RateCacheTTL > 0 {
		var rateCache cache.RateCache
		if cfg.RedisURL != "" {
			client, err := cache.NewRedisClient(cfg.RedisURL)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := client.Close(); cerr != nil {
					logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
				}
			}()
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to ping redis: %w", err)
			}
			rateCache = cache.NewRedisCache(client)
			logger.Info("Exchange rate cache backed by redis", slog.Duration("ttl", cfg.RateCacheTTL))
		} else {
			rateCache = cache.NewMemoryCache()
			logger.Info("Exchange rate cache kept in memory", slog.Duration("ttl", cfg.RateCacheTTL))
		}
		repos.ExchangeRateRepo = cache.NewExchangeRateRepository(repos.ExchangeRateRepo, rateCache, cfg.RateCacheTTL)
	}

	currencyRegistry := registry.NewISORegistry()
	serviceContainer := services.NewServiceContainer(cfg, repos, currencyRegistry)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, currencyRegistry); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("reference_currency", cfg.ReferenceCurrency),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}
