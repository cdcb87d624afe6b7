// Package config provides configuration management for transitwatch.
// All configuration is via environment variables; CLI flags in main
// override individual fields after Load.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	// Observer
	Latitude  float64 // TRANSITWATCH_LAT (default: 36.717)
	Longitude float64 // TRANSITWATCH_LON (default: 127.837)
	Target    string  // TRANSITWATCH_TARGET (default: "13:30:00"), HH:MM:SS sidereal

	// Display
	RefreshInterval time.Duration // TRANSITWATCH_REFRESH (default: 100ms)

	// Live reload
	ObserverFile string // TRANSITWATCH_OBSERVER_FILE (optional — JSON file watched for changes)

	// Alerting
	TelegramBotToken string        // TRANSITWATCH_TG_BOT_TOKEN (optional — if set, alerts are sent)
	TelegramChatID   string        // TRANSITWATCH_CHAT_ID
	AlertWindow      time.Duration // TRANSITWATCH_ALERT_WINDOW (default: 30m before target)

	// Logging
	LogDir    string // TRANSITWATCH_LOG_DIR (optional — if set, also log to a rotating file)
	LogFormat string // TRANSITWATCH_LOG_FORMAT (default: "text", or "json")
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Latitude:         envFloat("TRANSITWATCH_LAT", 36.717),
		Longitude:        envFloat("TRANSITWATCH_LON", 127.837),
		Target:           envStr("TRANSITWATCH_TARGET", "13:30:00"),
		RefreshInterval:  envDuration("TRANSITWATCH_REFRESH", 100*time.Millisecond),
		ObserverFile:     envStr("TRANSITWATCH_OBSERVER_FILE", ""),
		TelegramBotToken: envStr("TRANSITWATCH_TG_BOT_TOKEN", ""),
		TelegramChatID:   envStr("TRANSITWATCH_CHAT_ID", ""),
		AlertWindow:      envDuration("TRANSITWATCH_ALERT_WINDOW", 30*time.Minute),
		LogDir:           envStr("TRANSITWATCH_LOG_DIR", ""),
		LogFormat:        envStr("TRANSITWATCH_LOG_FORMAT", "text"),
	}
}

// AlertsEnabled reports whether both Telegram settings are present.
func (c *Config) AlertsEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
