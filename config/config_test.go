package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

// fixClock pins the clock used for the default seed.
func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"UNIONROSTER_SEED", "UNIONROSTER_SAVE_DIR", "UNIONROSTER_REDIS_ADDR", "UNIONROSTER_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("HOME", "/home/tester")
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fixClock(t, clock)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != clock.UnixNano() {
		t.Errorf("Seed = %d, want the clock %d", cfg.Seed, clock.UnixNano())
	}
	if cfg.SaveDir != "/home/tester/.unionroster/saves" {
		t.Errorf("SaveDir = %q", cfg.SaveDir)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("Level = %v, want warn", cfg.Level())
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("UNIONROSTER_SEED", "1234")
	t.Setenv("UNIONROSTER_SAVE_DIR", "/tmp/saves")
	t.Setenv("UNIONROSTER_REDIS_ADDR", "localhost:6379")
	t.Setenv("UNIONROSTER_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 1234 || cfg.SaveDir != "/tmp/saves" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
}

func TestLoad_ExplicitZeroSeed(t *testing.T) {
	t.Setenv("UNIONROSTER_SEED", "0")
	t.Setenv("UNIONROSTER_SAVE_DIR", "/tmp/saves")
	fixClock(t, time.Unix(99, 0))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoad_NoHome(t *testing.T) {
	t.Setenv("UNIONROSTER_SAVE_DIR", "")
	t.Setenv("HOME", "")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "resolve save dir") {
		t.Errorf("err = %v, want a save dir error", err)
	}
}

func TestLoad_BadSeed(t *testing.T) {
	t.Setenv("UNIONROSTER_SEED", "not-a-number")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Errorf("err = %v, want a parse error", err)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"chatty", slog.LevelWarn},
		{"", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := (Config{LogLevel: tt.in}).Level(); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
