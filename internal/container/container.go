// Package container provides dependency injection container for the addon.
package container

import (
	"fmt"

	"github.com/attaebra/familytv/internal/config"
	"github.com/attaebra/familytv/internal/constants"
	"github.com/attaebra/familytv/internal/globals"
	"github.com/attaebra/familytv/internal/host"
	"github.com/attaebra/familytv/internal/interfaces"
	"github.com/attaebra/familytv/internal/logger"
	"github.com/attaebra/familytv/internal/utils"
)

// Container holds all application dependencies.
type Container struct {
	config *config.Config

	// Host collaborators
	logger     *logger.ZapLogger
	settings   interfaces.Settings
	filesystem interfaces.Filesystem
	properties interfaces.Properties

	// The single configuration instance for this invocation
	globals *globals.Variables
}

// New creates a new dependency injection container with the provided configuration.
// args are the invocation arguments: plugin URL, then handle.
func New(cfg *config.Config, args []string) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	container := &Container{
		config: cfg,
	}

	container.initializeLogger()

	if err := container.initializeSettings(); err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	container.initializeFilesystem()
	container.initializeProperties()

	if err := container.initializeGlobals(args); err != nil {
		return nil, fmt.Errorf("failed to initialize globals: %w", err)
	}

	return container, nil
}

// initializeLogger applies the log level and history size.
func (c *Container) initializeLogger() {
	logger.SetLevel(logger.LevelFromString(c.config.LogLevel))
	logger.SetHistorySize(c.config.HistorySize)
	c.logger = logger.Default()

	c.logger.Debug("Initialized logger",
		logger.String("level", c.config.LogLevel),
		logger.Int("history_size", c.config.HistorySize))
}

// initializeSettings loads the host settings store.
func (c *Container) initializeSettings() error {
	settings, err := host.LoadFileSettings(c.config.SettingsPath)
	if err != nil {
		return utils.LogAndWrapError(err, "failed to load settings from %s", c.config.SettingsPath)
	}
	c.settings = settings

	c.logger.Debug("Loaded settings",
		logger.String("path", settings.Path()))
	return nil
}

// initializeFilesystem creates the special:// path resolver.
func (c *Container) initializeFilesystem() {
	c.filesystem = host.NewOSFilesystem(c.config.HomeRoot, c.config.ProfileRoot)

	c.logger.Debug("Initialized filesystem",
		logger.String("home", c.config.HomeRoot),
		logger.String("profile", c.config.ProfileRoot))
}

// initializeProperties creates the shared property namespace.
func (c *Container) initializeProperties() {
	c.properties = host.NewFileProperties(c.config.PropertiesPath)

	c.logger.Debug("Initialized properties",
		logger.String("path", c.config.PropertiesPath))
}

// initializeGlobals creates the configuration holder.
func (c *Container) initializeGlobals(args []string) error {
	vars, err := globals.New(&globals.Dependencies{
		Settings:   c.settings,
		Filesystem: c.filesystem,
		Properties: c.properties,
		Logger:     c.logger,
		Args:       args,
	})
	if err != nil {
		return err
	}
	c.globals = vars
	return nil
}

// GetGlobals returns the configuration holder.
func (c *Container) GetGlobals() *globals.Variables {
	return c.globals
}

// GetProperties returns the shared property namespace.
func (c *Container) GetProperties() interfaces.Properties {
	return c.properties
}

// MarkSettingsChanged raises the change property so the next invocation
// reloads its globals from the settings store.
func (c *Container) MarkSettingsChanged() error {
	if err := c.properties.SetProperty(constants.PropertyChange, "true"); err != nil {
		return utils.LogAndWrapError(err, "failed to set %s property", constants.PropertyChange)
	}

	c.logger.Info("Settings marked as changed",
		logger.String("properties", c.config.PropertiesPath))
	return nil
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Shutdown flushes the logger.
func (c *Container) Shutdown() {
	if c.logger != nil {
		// stderr sync fails on some terminals; nothing to recover
		_ = c.logger.Sync()
	}
}
