package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Ensure no env vars interfere
	for _, key := range []string{
		"TRANSITWATCH_LAT", "TRANSITWATCH_LON", "TRANSITWATCH_TARGET",
		"TRANSITWATCH_REFRESH", "TRANSITWATCH_OBSERVER_FILE",
		"TRANSITWATCH_TG_BOT_TOKEN", "TRANSITWATCH_CHAT_ID",
		"TRANSITWATCH_ALERT_WINDOW", "TRANSITWATCH_LOG_DIR", "TRANSITWATCH_LOG_FORMAT",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Latitude != 36.717 {
		t.Errorf("Latitude = %v, want 36.717", cfg.Latitude)
	}
	if cfg.Longitude != 127.837 {
		t.Errorf("Longitude = %v, want 127.837", cfg.Longitude)
	}
	if cfg.Target != "13:30:00" {
		t.Errorf("Target = %q, want 13:30:00", cfg.Target)
	}
	if cfg.RefreshInterval != 100*time.Millisecond {
		t.Errorf("RefreshInterval = %v, want 100ms", cfg.RefreshInterval)
	}
	if cfg.AlertWindow != 30*time.Minute {
		t.Errorf("AlertWindow = %v, want 30m", cfg.AlertWindow)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
	if cfg.AlertsEnabled() {
		t.Error("AlertsEnabled should be false with no Telegram settings")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRANSITWATCH_LAT", "19.82")
	t.Setenv("TRANSITWATCH_LON", "-155.47")
	t.Setenv("TRANSITWATCH_TARGET", "05:34:32")
	t.Setenv("TRANSITWATCH_REFRESH", "1s")
	t.Setenv("TRANSITWATCH_TG_BOT_TOKEN", "token123")
	t.Setenv("TRANSITWATCH_CHAT_ID", "42")

	cfg := Load()

	if cfg.Latitude != 19.82 {
		t.Errorf("Latitude = %v, want 19.82", cfg.Latitude)
	}
	if cfg.Longitude != -155.47 {
		t.Errorf("Longitude = %v, want -155.47", cfg.Longitude)
	}
	if cfg.Target != "05:34:32" {
		t.Errorf("Target = %q", cfg.Target)
	}
	if cfg.RefreshInterval != time.Second {
		t.Errorf("RefreshInterval = %v, want 1s", cfg.RefreshInterval)
	}
	if !cfg.AlertsEnabled() {
		t.Error("AlertsEnabled should be true with token and chat ID set")
	}
}

func TestEnvFloatInvalid(t *testing.T) {
	t.Setenv("TRANSITWATCH_LAT", "not-a-number")
	cfg := Load()
	if cfg.Latitude != 36.717 {
		t.Errorf("Latitude = %v, want fallback 36.717 on invalid input", cfg.Latitude)
	}
}

func TestEnvDurationInvalid(t *testing.T) {
	t.Setenv("TRANSITWATCH_REFRESH", "soon")
	cfg := Load()
	if cfg.RefreshInterval != 100*time.Millisecond {
		t.Errorf("RefreshInterval = %v, want fallback 100ms on invalid input", cfg.RefreshInterval)
	}
}

func TestEnvDurationRejectsNonPositive(t *testing.T) {
	t.Setenv("TRANSITWATCH_REFRESH", "-5s")
	cfg := Load()
	if cfg.RefreshInterval != 100*time.Millisecond {
		t.Errorf("RefreshInterval = %v, want fallback on negative duration", cfg.RefreshInterval)
	}
}
