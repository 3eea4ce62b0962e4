package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	if cfg.HasToken() {
		t.Error("fresh dir must have no token")
	}
	tok, err := cfg.ReadToken()
	if err != nil || tok != "" {
		t.Errorf("absent slot must read as empty, got %q (%v)", tok, err)
	}

	if err := cfg.WriteToken("tok-1"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !cfg.HasToken() {
		t.Error("expected token slot to exist")
	}
	tok, err = cfg.ReadToken()
	if err != nil || tok != "tok-1" {
		t.Errorf("expected tok-1, got %q (%v)", tok, err)
	}

	info, err := os.Stat(cfg.TokenPath())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}

	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if cfg.HasToken() {
		t.Error("expected token slot removed")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Errorf("removing an absent slot must not error: %v", err)
	}
}

func TestBaseURLPrecedence(t *testing.T) {
	dir := t.TempDir()
	settings := []byte("base_url: http://from-settings:8000\n")
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), settings, 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	t.Setenv(config.EnvBaseURL, "")
	cfg, err := config.New(dir, "")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.BaseURL != "http://from-settings:8000" {
		t.Errorf("expected settings URL, got %q", cfg.BaseURL)
	}

	t.Setenv(config.EnvBaseURL, "http://from-env:8000")
	cfg, err = config.New(dir, "")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.BaseURL != "http://from-env:8000" {
		t.Errorf("env must beat settings, got %q", cfg.BaseURL)
	}

	cfg, err = config.New(dir, "http://from-flag:8000")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.BaseURL != "http://from-flag:8000" {
		t.Errorf("flag must beat env, got %q", cfg.BaseURL)
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv(config.EnvBaseURL, "")
	cfg, err := config.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("expected default URL, got %q", cfg.BaseURL)
	}
	if cfg.PollInterval != config.DefaultPollInterval || cfg.PollMaxAttempts != config.DefaultPollMaxAttempts {
		t.Errorf("expected default poll bounds, got %v/%d", cfg.PollInterval, cfg.PollMaxAttempts)
	}
}

func TestPollSettings(t *testing.T) {
	dir := t.TempDir()
	settings := []byte("poll_interval_ms: 50\npoll_max_attempts: 3\n")
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), settings, 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	cfg, err := config.New(dir, "")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.PollInterval != 50*time.Millisecond {
		t.Errorf("expected 50ms interval, got %v", cfg.PollInterval)
	}
	if cfg.PollMaxAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", cfg.PollMaxAttempts)
	}
}

func TestInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(":\tnot yaml"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	if _, err := config.New(dir, ""); err == nil {
		t.Error("expected error for malformed settings")
	}
}
