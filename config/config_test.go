package config

import (
	"errors"
	"testing"

	screenererrors "github.com/zhassan-dev/resume-screener/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("Expected default upload dir ./uploads, got %s", cfg.UploadDir)
	}
	if cfg.Threshold != DefaultThreshold {
		t.Errorf("Expected default threshold %v, got %v", DefaultThreshold, cfg.Threshold)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("Expected default SMTP port 587, got %d", cfg.SMTP.Port)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MATCH_THRESHOLD", "0.75")
	t.Setenv("SMTP_USER", "hr@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
	if cfg.Threshold != 0.75 {
		t.Errorf("Expected threshold 0.75, got %v", cfg.Threshold)
	}
	// From falls back to the SMTP user when unset
	if cfg.SMTP.From != "hr@example.com" {
		t.Errorf("Expected From to default to SMTP user, got %s", cfg.SMTP.From)
	}
}

func TestLoadRejectsOutOfRangeThreshold(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "1.5")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for threshold above 1")
	}
	if !errors.Is(err, screenererrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
