package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// ReferenceCurrency is the pivot for cross rates.
	ReferenceCurrency string

	// Rate cache. An empty RedisURL selects the in-process cache; a zero TTL disables caching.
	RedisURL     string
	RateCacheTTL time.Duration

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REFERENCE_CURRENCY", "USD")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATE_CACHE_TTL", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Values from .env can be overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.ReferenceCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("REFERENCE_CURRENCY")))
	if len(cfg.ReferenceCurrency) != 3 {
		log.Printf("Warning: Invalid REFERENCE_CURRENCY ('%s'). Defaulting to USD.\n", cfg.ReferenceCurrency)
		cfg.ReferenceCurrency = "USD"
	}

	cacheTTLStr := viper.GetString("RATE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL < 0 {
		cacheTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RateCacheTTL = cacheTTL
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
