package config

import (
	"log"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Capability flags gating transaction mutations. These are owned by the
	// deployment environment; the application only reads them.
	Capabilities domain.Capabilities

	// Rate limiting, expressed in the limiter's period notation (e.g. "100-M").
	RateLimit string

	// Change feed
	ChangeFeedEnabled bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ALLOW_TXN_EDIT", false)
	viper.SetDefault("ALLOW_TXN_DELETE", false)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CHANGE_FEED_ENABLED", true)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.Capabilities = domain.Capabilities{
		AllowEdit:   viper.GetBool("ALLOW_TXN_EDIT"),
		AllowDelete: viper.GetBool("ALLOW_TXN_DELETE"),
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.ChangeFeedEnabled = viper.GetBool("CHANGE_FEED_ENABLED")

	return cfg, nil
}
