// Package host provides file and OS backed implementations of the host contracts.
package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/attaebra/familytv/internal/interfaces"
)

// SettingsFile is the on-disk layout of a settings file.
type SettingsFile struct {
	Addon    map[string]string `yaml:"addon"`
	Settings map[string]string `yaml:"settings"`
}

// FileSettings serves addon info and user settings loaded from a YAML file.
type FileSettings struct {
	path string
	data SettingsFile
}

// Ensure FileSettings implements the Settings interface.
var _ interfaces.Settings = (*FileSettings)(nil)

// LoadFileSettings reads the settings file at path.
func LoadFileSettings(path string) (*FileSettings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	var data SettingsFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return &FileSettings{path: path, data: data}, nil
}

// Path returns the file the settings were loaded from.
func (s *FileSettings) Path() string {
	return s.path
}

// GetSetting returns the user setting for key.
func (s *FileSettings) GetSetting(key string) string {
	return s.data.Settings[key]
}

// GetAddonInfo returns the addon info value for key.
func (s *FileSettings) GetAddonInfo(key string) string {
	return s.data.Addon[key]
}

// MemorySettings is a map backed Settings, used when no settings file is present.
type MemorySettings struct {
	Info     map[string]string
	Settings map[string]string
}

// Ensure MemorySettings implements the Settings interface.
var _ interfaces.Settings = (*MemorySettings)(nil)

// GetSetting returns the user setting for key.
func (s *MemorySettings) GetSetting(key string) string {
	return s.Settings[key]
}

// GetAddonInfo returns the addon info value for key.
func (s *MemorySettings) GetAddonInfo(key string) string {
	return s.Info[key]
}
