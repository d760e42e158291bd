// Package config holds the gateway's runtime configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"sigs.k8s.io/yaml"
)

// Config carries every tunable the server reads. Precedence, lowest first:
// defaults, YAML config file, .env file, AUTOGUI_* environment variables,
// command-line flags (applied by the caller).
type Config struct {
	// Logging settings
	LogLevel string `json:"log_level"`

	// Service identification
	ServiceName    string `json:"service_name"`
	ServiceVersion string `json:"service_version"`

	// FailSafe aborts input-injecting tools while the cursor sits in the
	// top-left screen corner, mirroring the classic automation escape hatch.
	FailSafe bool `json:"fail_safe"`

	// ActionPause is the settle delay applied after every mutating tool.
	ActionPause time.Duration `json:"action_pause"`

	// ScreenshotDir receives screenshots saved by filename.
	ScreenshotDir string `json:"screenshot_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		ServiceName:    "autogui-mcp",
		ServiceVersion: "dev",
		FailSafe:       true,
		ActionPause:    100 * time.Millisecond,
		ScreenshotDir:  "screenshots",
	}
}

// Load builds the configuration from defaults, an optional YAML file, an
// optional .env file, and the environment.
func Load(configFile, envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("AUTOGUI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("AUTOGUI_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("AUTOGUI_SERVICE_VERSION"); v != "" {
		cfg.ServiceVersion = v
	}
	if v := os.Getenv("AUTOGUI_FAILSAFE"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.FailSafe = parsed
		}
	}
	if v := os.Getenv("AUTOGUI_ACTION_PAUSE"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.ActionPause = parsed
		}
	}
	if v := os.Getenv("AUTOGUI_SCREENSHOT_DIR"); v != "" {
		cfg.ScreenshotDir = v
	}
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.ActionPause < 0 {
		return fmt.Errorf("action pause must not be negative, got %s", c.ActionPause)
	}
	if c.ScreenshotDir == "" {
		return fmt.Errorf("screenshot dir must not be empty")
	}
	return nil
}
