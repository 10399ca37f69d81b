package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "veteran-mentors", cfg.DefaultSite)
	assert.Equal(t, 30*time.Minute, cfg.PageTTL)
	assert.True(t, cfg.Dev)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mentors-web.yaml")
	body := "addr: \":9000\"\nlog_level: debug\npage_ttl: 5m\ncors_origins:\n  - https://a.example\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("MENTORS_WEB_LOG_LEVEL", "warn")
	t.Setenv("MENTORS_WEB_DEFAULT_SITE", "career-compass")
	t.Setenv("PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr, "explicit addr beats PORT")
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "career-compass", cfg.DefaultSite)
	assert.Equal(t, 5*time.Minute, cfg.PageTTL)
	assert.Equal(t, []string{"https://a.example"}, cfg.CORSOrigins)
}

func TestLoadHonoursPort(t *testing.T) {
	t.Setenv("PORT", "7000")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"zero ttl", func(c *Config) { c.PageTTL = 0 }, "page_ttl"},
		{"prod without key", func(c *Config) { c.Env = "prod" }, "session_key"},
		{"empty addr", func(c *Config) { c.Addr = " " }, "addr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
