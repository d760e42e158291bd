package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "autogui-mcp", cfg.ServiceName)
	assert.True(t, cfg.FailSafe)
	assert.Equal(t, 100*time.Millisecond, cfg.ActionPause)
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
log_level: debug
service_name: desktop-gateway
fail_safe: false
screenshot_dir: /tmp/shots
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "desktop-gateway", cfg.ServiceName)
	assert.False(t, cfg.FailSafe)
	assert.Equal(t, "/tmp/shots", cfg.ScreenshotDir)
	// Untouched fields keep their defaults.
	assert.Equal(t, "dev", cfg.ServiceVersion)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AUTOGUI_LOG_LEVEL", "warn")
	t.Setenv("AUTOGUI_FAILSAFE", "false")
	t.Setenv("AUTOGUI_ACTION_PAUSE", "250ms")
	t.Setenv("AUTOGUI_SCREENSHOT_DIR", "captures")

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.FailSafe)
	assert.Equal(t, 250*time.Millisecond, cfg.ActionPause)
	assert.Equal(t, "captures", cfg.ScreenshotDir)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	t.Setenv("AUTOGUI_LOG_LEVEL", "error")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"negative pause", func(c *Config) { c.ActionPause = -time.Second }, true},
		{"empty screenshot dir", func(c *Config) { c.ScreenshotDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
