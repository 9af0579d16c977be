// Package config centralises configuration parsing for the activities service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress       string
	KafkaBrokers      []string // empty disables event publishing
	RosterEventsTopic string
	PublishTimeout    time.Duration
	CORSAllowOrigin   string
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8080"),
		RosterEventsTopic: getEnv("ROSTER_EVENTS_TOPIC", "roster_events"),
		PublishTimeout:    getDurationEnv("PUBLISH_TIMEOUT", 2*time.Second),
		CORSAllowOrigin:   getEnv("CORS_ALLOW_ORIGIN", "http://localhost:5173"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = splitAndTrim(brokers)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
