package config

import (
	"fmt"
	"log"
	"time"

	"github.com/avis-project/avis_backend/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// ElectionWindowDuration is the default voting window applied to a new
	// election: StartDate = now, EndDate = now + window.
	ElectionWindowDuration time.Duration

	// Advisory text service (optional external collaborator).
	AdvisoryBaseURL string
	AdvisoryAPIKey  string
	AdvisoryTimeout time.Duration

	// LoginRateLimit uses limiter's formatted notation, e.g. "5-M".
	LoginRateLimit string

	PosthogAPIKey   string
	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "avis-backend")
	viper.SetDefault("ELECTION_WINDOW_DURATION", "120h")
	viper.SetDefault("ADVISORY_BASE_URL", "")
	viper.SetDefault("ADVISORY_API_KEY", "")
	viper.SetDefault("ADVISORY_TIMEOUT", "10s")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Falling back to the in-memory store (demo mode).")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate ephemeral JWT secret: %w", err)
		}
		cfg.JWTSecret = secret
		log.Println("Warning: JWT_SECRET not set. Generated an ephemeral secret; issued tokens will not survive a restart.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	windowStr := viper.GetString("ELECTION_WINDOW_DURATION")
	windowDuration, err := time.ParseDuration(windowStr)
	if err != nil || windowDuration <= 0 {
		windowDuration = 120 * time.Hour
		log.Printf("Warning: Invalid value for ELECTION_WINDOW_DURATION ('%s'). Defaulting to %s.\n", windowStr, windowDuration.String())
	}
	cfg.ElectionWindowDuration = windowDuration

	cfg.AdvisoryBaseURL = viper.GetString("ADVISORY_BASE_URL")
	cfg.AdvisoryAPIKey = viper.GetString("ADVISORY_API_KEY")
	advisoryTimeoutStr := viper.GetString("ADVISORY_TIMEOUT")
	advisoryTimeout, err := time.ParseDuration(advisoryTimeoutStr)
	if err != nil || advisoryTimeout <= 0 {
		advisoryTimeout = 10 * time.Second
	}
	cfg.AdvisoryTimeout = advisoryTimeout
	if cfg.AdvisoryBaseURL == "" {
		log.Println("Warning: ADVISORY_BASE_URL not set. Advisory summaries will return fallback text.")
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
