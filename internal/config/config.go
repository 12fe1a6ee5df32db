package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// app config, mostly provider and datastore related
type Config struct {
	Provider string

	DBDriver string // "sqlite" or "postgres"
	DBDSN    string

	PistonURL   string
	TTSEndpoint string // empty means the default Edge endpoint

	CORSAllowedOrigins []string

	CleanupEnabled   bool
	CleanupSchedule  string
	CleanupRetention time.Duration
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	retention, err := time.ParseDuration(getEnvOrDefault("CLEANUP_RETENTION", "720h"))
	if err != nil {
		return nil, errors.New("invalid CLEANUP_RETENTION: " + err.Error())
	}

	config := &Config{
		Provider:           getEnvOrDefault("AI_PROVIDER", "gemini"),
		DBDriver:           getEnvOrDefault("DB_DRIVER", "sqlite"),
		DBDSN:              getEnvOrDefault("DB_DSN", "file:interviews.db?cache=shared"),
		PistonURL:          getEnvOrDefault("PISTON_API_URL", "https://emkc.org/api/v2/piston"),
		TTSEndpoint:        getEnvOrDefault("TTS_ENDPOINT", ""),
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		CleanupEnabled:     getEnvBool("CLEANUP_ENABLED", false),
		CleanupSchedule:    getEnvOrDefault("CLEANUP_SCHEDULE", "0 3 * * *"),
		CleanupRetention:   retention,
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.DBDriver != "sqlite" && config.DBDriver != "postgres" {
		return errors.New("unsupported DB driver: " + config.DBDriver + ". Currently supported: sqlite, postgres")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
