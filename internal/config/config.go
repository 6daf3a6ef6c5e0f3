package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the POS simulator
type Config struct {
	// Currency is the symbol prefixed to displayed amounts.
	Currency string
	// Port is the listen port for the web driver.
	Port int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("POS_PORT", "3000"))
	if err != nil {
		port = 3000
	}

	return &Config{
		Currency: getEnv("POS_CURRENCY", "$"),
		Port:     port,
		LogLevel: getEnv("POS_LOG_LEVEL", "info"),
	}, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
