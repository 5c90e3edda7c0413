package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange/internal/platform/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://localhost/exchange")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/exchange", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "USD", cfg.ReferenceCurrency)
	assert.Equal(t, 30*time.Second, cfg.RateCacheTTL)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("REFERENCE_CURRENCY", " eur ")
	t.Setenv("RATE_CACHE_TTL", "0s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "EUR", cfg.ReferenceCurrency)
	assert.Zero(t, cfg.RateCacheTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	viper.Reset()
	t.Setenv("REFERENCE_CURRENCY", "DOLLAR")
	t.Setenv("RATE_CACHE_TTL", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.ReferenceCurrency)
	assert.Equal(t, 30*time.Second, cfg.RateCacheTTL)
}
