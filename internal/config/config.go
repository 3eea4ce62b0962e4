// Package config handles the XDG configuration directory, the persisted
// token slot, and the settings file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// TokenFile is the stored bearer token filename. It holds the raw
	// token string and nothing else.
	TokenFile = "token"

	// SettingsFile is the settings filename.
	SettingsFile = "config.yaml"

	// EnvBaseURL overrides the backend base URL when set.
	EnvBaseURL = "TODO_API_URL"

	// DefaultBaseURL is used when no flag, env var, or setting applies.
	DefaultBaseURL = "http://localhost:8000"
)

// Default poll bounds for waiting on user-id resolution after a stored
// token is adopted but the profile fetch is still in flight.
const (
	DefaultPollInterval    = 200 * time.Millisecond
	DefaultPollMaxAttempts = 25
)

// Settings is the config.yaml document.
type Settings struct {
	BaseURL         string `yaml:"base_url,omitempty"`
	PollIntervalMS  int    `yaml:"poll_interval_ms,omitempty"`
	PollMaxAttempts int    `yaml:"poll_max_attempts,omitempty"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the backend base URL after precedence is applied.
	BaseURL string

	// PollInterval and PollMaxAttempts bound the startup wait for
	// user-id resolution.
	PollInterval    time.Duration
	PollMaxAttempts int

	// Debug enables diagnostic logging to DebugOut.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// DebugOut receives debug lines. Nil means discard.
	DebugOut io.Writer
}

// New creates a Config rooted at the given directory (default XDG dir
// when empty), loads the settings file if present, and applies base URL
// precedence: flagURL > $TODO_API_URL > settings > default.
func New(configDir, flagURL string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:             dir,
		PollInterval:    DefaultPollInterval,
		PollMaxAttempts: DefaultPollMaxAttempts,
	}

	var s Settings
	data, err := os.ReadFile(cfg.SettingsPath())
	if err == nil {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if s.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(s.PollIntervalMS) * time.Millisecond
	}
	if s.PollMaxAttempts > 0 {
		cfg.PollMaxAttempts = s.PollMaxAttempts
	}

	switch {
	case flagURL != "":
		cfg.BaseURL = flagURL
	case os.Getenv(EnvBaseURL) != "":
		cfg.BaseURL = os.Getenv(EnvBaseURL)
	case s.BaseURL != "":
		cfg.BaseURL = s.BaseURL
	default:
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the token slot.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if the token slot exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// ReadToken returns the persisted token, or "" if the slot is empty or
// absent.
func (c *Config) ReadToken() (string, error) {
	data, err := os.ReadFile(c.TokenPath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteToken persists the token with mode 0600, creating the config
// directory if needed.
func (c *Config) WriteToken(token string) error {
	if err := c.EnsureDir(); err != nil {
		return err
	}
	return os.WriteFile(c.TokenPath(), []byte(token+"\n"), 0600)
}

// RemoveToken erases the token slot. Removing an absent slot is not an
// error.
func (c *Config) RemoveToken() error {
	err := os.Remove(c.TokenPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Debugf writes a diagnostic line when debug logging is enabled.
func (c *Config) Debugf(format string, args ...any) {
	if !c.Debug || c.DebugOut == nil {
		return
	}
	fmt.Fprintf(c.DebugOut, "debug: "+format+"\n", args...)
}
