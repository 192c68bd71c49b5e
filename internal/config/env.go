package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/streammapparr/streammatch/internal/log"
)

// Environment variable names recognized as overrides.
const (
	EnvDatabaseDir = "STREAMMATCH_DATABASE_DIR"
	EnvThreshold   = "STREAMMATCH_THRESHOLD"
	EnvLogLevel    = "STREAMMATCH_LOG_LEVEL"
	EnvIgnoreTags  = "STREAMMATCH_IGNORE_TAGS" // comma separated
)

func applyEnv(cfg *Config) {
	logger := log.WithComponent("config")
	cfg.DatabaseDir = parseString(logger, EnvDatabaseDir, cfg.DatabaseDir)
	cfg.MatchThreshold = parseInt(logger, EnvThreshold, cfg.MatchThreshold)
	cfg.LogLevel = parseString(logger, EnvLogLevel, cfg.LogLevel)
	cfg.IgnoreTags = parseStringSlice(logger, EnvIgnoreTags, cfg.IgnoreTags)
}

// parseString reads a string from an environment variable or returns the
// default. It logs the source for observability.
func parseString(logger zerolog.Logger, key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		logger.Debug().
			Str("key", key).
			Str("default", defaultValue).
			Str("source", "default").
			Msg("using default value")
		return defaultValue
	}
	logger.Debug().
		Str("key", key).
		Str("value", value).
		Str("source", "environment").
		Msg("using environment variable")
	return value
}

// parseInt reads an integer from an environment variable, falling back to
// the default on parse errors.
func parseInt(logger zerolog.Logger, key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn().
			Str("key", key).
			Str("value", value).
			Int("default", defaultValue).
			Msg("invalid integer in environment variable, using default")
		return defaultValue
	}
	logger.Debug().
		Str("key", key).
		Int("value", i).
		Str("source", "environment").
		Msg("using environment variable")
	return i
}

// parseStringSlice reads a comma separated list from an environment
// variable. Empty elements are dropped.
func parseStringSlice(logger zerolog.Logger, key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	logger.Debug().
		Str("key", key).
		Strs("value", out).
		Str("source", "environment").
		Msg("using environment variable")
	return out
}
