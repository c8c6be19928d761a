package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coachpad/matchtime/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	DBURL              string
	CORSAllowedOrigins []string
	SeedDemoData       bool
}

func Load() (Config, error) {
	cfg := Config{
		ServiceName:        getEnv("APP_SERVICE_NAME", "matchtime"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:              strings.TrimSpace(os.Getenv("DB_URL")),
		CORSAllowedOrigins: splitCSV(getEnv("APP_CORS_ALLOWED_ORIGINS", "*")),
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}
	cfg.AppEnv = appEnv

	readTimeoutSec, err := getEnvAsInt("APP_HTTP_READ_TIMEOUT_SEC", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_HTTP_READ_TIMEOUT_SEC: %w", err)
	}
	if readTimeoutSec <= 0 {
		return Config{}, fmt.Errorf("APP_HTTP_READ_TIMEOUT_SEC must be > 0")
	}

	writeTimeoutSec, err := getEnvAsInt("APP_HTTP_WRITE_TIMEOUT_SEC", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_HTTP_WRITE_TIMEOUT_SEC: %w", err)
	}
	if writeTimeoutSec <= 0 {
		return Config{}, fmt.Errorf("APP_HTTP_WRITE_TIMEOUT_SEC must be > 0")
	}

	cfg.ReadTimeout = time.Duration(readTimeoutSec) * time.Second
	cfg.WriteTimeout = time.Duration(writeTimeoutSec) * time.Second
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))
	cfg.SeedDemoData = getEnvAsBool("APP_SEED_DEMO_DATA", cfg.AppEnv == EnvDev)

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
