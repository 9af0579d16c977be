package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Empty(t, cfg.KafkaBrokers)
	require.Equal(t, "roster_events", cfg.RosterEventsTopic)
	require.Equal(t, 2*time.Second, cfg.PublishTimeout)
	require.Equal(t, "http://localhost:5173", cfg.CORSAllowOrigin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,")
	t.Setenv("ROSTER_EVENTS_TOPIC", "roster_changes")
	t.Setenv("PUBLISH_TIMEOUT", "500ms")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "roster_changes", cfg.RosterEventsTopic)
	require.Equal(t, 500*time.Millisecond, cfg.PublishTimeout)
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("PUBLISH_TIMEOUT", "soon")

	cfg := Load()
	require.Equal(t, 2*time.Second, cfg.PublishTimeout)
}
