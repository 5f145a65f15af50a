package config

import (
	"testing"
	"time"
)

func TestParseDurationEnv_Default(t *testing.T) {
	d, err := parseDurationEnv("STATS_REPORT_INTERVAL", "1h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != time.Hour {
		t.Errorf("expected 1h, got %s", d)
	}
}

func TestParseDurationEnv_FromEnv(t *testing.T) {
	t.Setenv("STATS_REPORT_INTERVAL", "15m")

	d, err := parseDurationEnv("STATS_REPORT_INTERVAL", "1h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 15*time.Minute {
		t.Errorf("expected 15m, got %s", d)
	}
}

func TestParseDurationEnv_RejectsZero(t *testing.T) {
	// A zero interval would panic the ticker in the stats worker.
	t.Setenv("STATS_REPORT_INTERVAL", "0")

	if _, err := parseDurationEnv("STATS_REPORT_INTERVAL", "1h"); err == nil {
		t.Error("expected an error for a zero duration")
	}
}

func TestParseDurationEnv_RejectsNegative(t *testing.T) {
	t.Setenv("STATS_REPORT_INTERVAL", "-5m")

	if _, err := parseDurationEnv("STATS_REPORT_INTERVAL", "1h"); err == nil {
		t.Error("expected an error for a negative duration")
	}
}

func TestParseDurationEnv_RejectsGarbage(t *testing.T) {
	t.Setenv("STATS_REPORT_INTERVAL", "soon")

	if _, err := parseDurationEnv("STATS_REPORT_INTERVAL", "1h"); err == nil {
		t.Error("expected an error for an unparseable duration")
	}
}
