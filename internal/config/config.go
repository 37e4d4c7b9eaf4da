// Package config provides runtime configuration for the addon process.
package config

import (
	"fmt"
	"os"

	"github.com/attaebra/familytv/internal/constants"
)

// Config holds where the host backed state lives and how to log.
type Config struct {
	// Host settings store (YAML) and shared property file
	SettingsPath   string
	PropertiesPath string

	// Roots for special://home and special://profile
	HomeRoot    string
	ProfileRoot string

	// Runtime configuration
	LogLevel    string
	HistorySize int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SettingsPath:   "settings.yaml",
		PropertiesPath: "properties.yaml",
		HomeRoot:       ".",
		ProfileRoot:    "userdata",
		LogLevel:       "info",
		HistorySize:    constants.DefaultHistorySize,
	}
}

// LoadFromEnvironment loads configuration from environment variables.
func (c *Config) LoadFromEnvironment() {
	if settingsPath := os.Getenv("FAMILYTV_SETTINGS"); settingsPath != "" {
		c.SettingsPath = settingsPath
	}

	if propertiesPath := os.Getenv("FAMILYTV_PROPERTIES"); propertiesPath != "" {
		c.PropertiesPath = propertiesPath
	}

	if homeRoot := os.Getenv("FAMILYTV_HOME"); homeRoot != "" {
		c.HomeRoot = homeRoot
	}

	if profileRoot := os.Getenv("FAMILYTV_PROFILE"); profileRoot != "" {
		c.ProfileRoot = profileRoot
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.LogLevel = logLevel
	}
}

// LoadFromFlags loads configuration from command line flags.
func (c *Config) LoadFromFlags(settingsPath, propertiesPath, homeRoot, profileRoot, logLevel *string) {
	if settingsPath != nil && *settingsPath != "" {
		c.SettingsPath = *settingsPath
	}

	if propertiesPath != nil && *propertiesPath != "" {
		c.PropertiesPath = *propertiesPath
	}

	if homeRoot != nil && *homeRoot != "" {
		c.HomeRoot = *homeRoot
	}

	if profileRoot != nil && *profileRoot != "" {
		c.ProfileRoot = *profileRoot
	}

	if logLevel != nil && *logLevel != "" {
		c.LogLevel = *logLevel
	}
}

// Validate ensures the configuration is valid.
func (c *Config) Validate() error {
	if c.SettingsPath == "" {
		return fmt.Errorf("settings path is required")
	}

	if c.PropertiesPath == "" {
		return fmt.Errorf("properties path is required")
	}

	if c.ProfileRoot == "" {
		return fmt.Errorf("profile root is required")
	}

	switch c.LogLevel {
	case "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	if c.HistorySize <= 0 {
		return fmt.Errorf("invalid history size: %d", c.HistorySize)
	}

	return nil
}
