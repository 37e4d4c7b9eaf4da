// Package main is the FamilyTV addon entry point. The host runs it with the
// plugin URL and the addon handle as positional arguments.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/attaebra/familytv/internal/config"
	"github.com/attaebra/familytv/internal/container"
	"github.com/attaebra/familytv/internal/logger"
)

const crashReportName = "familytv-crash.log"

func main() {
	// Parse command line arguments.
	settingsPath := flag.String("settings", "", "Path to the addon settings file")
	propertiesPath := flag.String("properties", "", "Path to the shared property file")
	homeRoot := flag.String("home", "", "Directory behind special://home")
	profileRoot := flag.String("profile", "", "Directory behind special://profile")
	logLevel := flag.String("log-level", "", "Logging level: error, warn, info, debug")
	markChanged := flag.Bool("mark-changed", false, "Flag the settings as edited so the next invocation reloads them, then exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <plugin-url> <handle> [query]\n       %s [flags] -mark-changed\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Create configuration with defaults
	cfg := config.DefaultConfig()

	// Command line flags, then environment
	cfg.LoadFromFlags(settingsPath, propertiesPath, homeRoot, profileRoot, logLevel)
	cfg.LoadFromEnvironment()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Configuration validation failed", logger.ErrorField("error", err))
	}

	c, err := container.New(cfg, flag.Args())
	if err != nil {
		logger.Fatal("Failed to initialize container", logger.ErrorField("error", err))
	}
	defer c.Shutdown()

	if *markChanged {
		if err := c.MarkSettingsChanged(); err != nil {
			c.Shutdown()
			os.Exit(1)
		}
		return
	}

	vars := c.GetGlobals()
	if err := vars.InitGlobals(); err != nil {
		logger.Error("Failed to load global variables", logger.ErrorField("error", err))
		writeCrashReport(cfg.ProfileRoot)
		c.Shutdown()
		os.Exit(1)
	}

	addon := vars.AddOn()
	portal := vars.Portal()

	logger.Info("Addon initialized",
		logger.String("addon_id", addon.AddonID),
		logger.Int("handle", vars.GetHandle()),
		logger.String("token_path", addon.TokenPath))
	logger.Info("Portal identity",
		logger.String("portal_url", portal.PortalURL),
		logger.String("device_id", portal.DeviceID),
		logger.String("serial_number", portal.SerialNumber))
}

// writeCrashReport saves the recent log tail where the host can pick it up.
func writeCrashReport(dir string) {
	path := filepath.Join(dir, crashReportName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("Could not create crash report directory", logger.ErrorField("error", err))
		return
	}
	if err := os.WriteFile(path, []byte(logger.Recent()), 0o644); err != nil {
		logger.Warn("Could not write crash report", logger.ErrorField("error", err))
		return
	}
	logger.Info("Crash report written", logger.String("path", path))
}
