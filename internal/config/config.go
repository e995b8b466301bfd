package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"apex-tracker/internal/constants"
)

type Config struct {
	APIKey         string
	BaseURL        string
	APIVersion     int
	LogLevel       string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	ServerPort     string
	SentryDSN      string
	Environment    string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	apiVersion, err := strconv.Atoi(getEnv("APEX_API_VERSION", "1"))
	if err != nil || apiVersion <= 0 {
		return nil, fmt.Errorf("APEX_API_VERSION must be a positive integer")
	}
	requestTimeout, err := getDuration("REQUEST_TIMEOUT", constants.ExternalAPITimeout)
	if err != nil {
		return nil, err
	}
	pollInterval, err := getDuration("POLL_INTERVAL", constants.DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	if pollInterval < constants.MinPollInterval {
		return nil, fmt.Errorf("POLL_INTERVAL must be at least %s", constants.MinPollInterval)
	}

	cfg := &Config{
		APIKey:         getEnv("APEX_API_KEY", ""),
		BaseURL:        getEnv("APEX_BASE_URL", ""),
		APIVersion:     apiVersion,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RequestTimeout: requestTimeout,
		PollInterval:   pollInterval,
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APEX_API_KEY is required")
	}

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Int("api_version", cfg.APIVersion).
		Str("log_level", cfg.LogLevel).
		Dur("request_timeout", cfg.RequestTimeout).
		Dur("poll_interval", cfg.PollInterval).
		Bool("sentry", cfg.SentryDSN != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
