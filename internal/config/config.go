package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "MENTORS_WEB_"

// Config is the server configuration, corresponding to mentors-web.yaml.
type Config struct {
	Addr           string        `koanf:"addr"`
	Env            string        `koanf:"env"`
	Dev            bool          `koanf:"dev"`
	LogLevel       string        `koanf:"log_level"`
	ContentDir     string        `koanf:"content_dir"`
	DefaultSite    string        `koanf:"default_site"`
	LocalesDir     string        `koanf:"locales_dir"`
	FallbackLocale string        `koanf:"fallback_locale"`
	SessionKey     string        `koanf:"session_key"`
	PageTTL        time.Duration `koanf:"page_ttl"`
	SweepInterval  time.Duration `koanf:"sweep_interval"`
	ShutdownGrace  time.Duration `koanf:"shutdown_grace"`
	CORSOrigins    []string      `koanf:"cors_origins"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Addr:           ":8080",
		Env:            "dev",
		LogLevel:       "info",
		DefaultSite:    "veteran-mentors",
		FallbackLocale: "en",
		PageTTL:        30 * time.Minute,
		SweepInterval:  time.Minute,
		ShutdownGrace:  10 * time.Second,
		CORSOrigins:    []string{"*"},
	}
}

// Load reads configuration from the given YAML file, if any, then overlays
// environment variable overrides (MENTORS_WEB_*). PORT is honoured when no
// explicit address override is present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && !k.Exists("addr") {
		cfg.Addr = ":" + port
	}
	if cfg.Env == "dev" && !k.Exists("dev") {
		cfg.Dev = true
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.FallbackLocale == "" {
		return fmt.Errorf("fallback_locale is required")
	}
	if c.PageTTL <= 0 {
		return fmt.Errorf("page_ttl must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive")
	}
	if c.ShutdownGrace < 0 {
		return fmt.Errorf("shutdown_grace must be non-negative")
	}
	if c.Env != "dev" && c.SessionKey == "" {
		return fmt.Errorf("session_key is required outside dev")
	}
	return nil
}
