package config

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FAMILYTV_SETTINGS", "/etc/familytv/settings.yaml")
	t.Setenv("FAMILYTV_PROPERTIES", "/run/familytv/properties.yaml")
	t.Setenv("FAMILYTV_HOME", "/home/kodi")
	t.Setenv("FAMILYTV_PROFILE", "/home/kodi/userdata")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.LoadFromEnvironment()

	if cfg.SettingsPath != "/etc/familytv/settings.yaml" {
		t.Errorf("SettingsPath = %s", cfg.SettingsPath)
	}
	if cfg.PropertiesPath != "/run/familytv/properties.yaml" {
		t.Errorf("PropertiesPath = %s", cfg.PropertiesPath)
	}
	if cfg.HomeRoot != "/home/kodi" {
		t.Errorf("HomeRoot = %s", cfg.HomeRoot)
	}
	if cfg.ProfileRoot != "/home/kodi/userdata" {
		t.Errorf("ProfileRoot = %s", cfg.ProfileRoot)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestLoadFromFlags(t *testing.T) {
	settings := "custom.yaml"
	empty := ""
	level := "warn"

	cfg := DefaultConfig()
	cfg.LoadFromFlags(&settings, &empty, nil, nil, &level)

	if cfg.SettingsPath != "custom.yaml" {
		t.Errorf("SettingsPath = %s", cfg.SettingsPath)
	}
	if cfg.PropertiesPath != "properties.yaml" {
		t.Errorf("Expected empty flag to keep default, got %s", cfg.PropertiesPath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Missing settings path", func(c *Config) { c.SettingsPath = "" }},
		{"Missing properties path", func(c *Config) { c.PropertiesPath = "" }},
		{"Missing profile root", func(c *Config) { c.ProfileRoot = "" }},
		{"Bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"Bad history size", func(c *Config) { c.HistorySize = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation error")
			}
		})
	}
}
