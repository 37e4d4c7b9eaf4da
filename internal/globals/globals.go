// Package globals initializes and holds the process wide addon and portal
// configuration. A single Variables instance is built at startup and handed
// to every component that needs it.
package globals

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/attaebra/familytv/internal/constants"
	"github.com/attaebra/familytv/internal/interfaces"
	"github.com/attaebra/familytv/internal/logger"
)

// Common errors.
var (
	ErrMissingArgument   = errors.New("missing invocation argument")
	ErrInvalidHandle     = errors.New("invalid addon handle")
	ErrMissingDependency = errors.New("missing dependency")
)

// Dependencies holds the host collaborators Variables reads from.
type Dependencies struct {
	Settings   interfaces.Settings
	Filesystem interfaces.Filesystem
	Properties interfaces.Properties
	Logger     interfaces.Logger

	// Args are the invocation arguments: the plugin URL, then the handle.
	Args []string
}

// QueryParam is one key/value pair of a plugin URL query, kept in order.
type QueryParam struct {
	Key   string
	Value string
}

// Param is shorthand for building a QueryParam.
func Param(key, value string) QueryParam {
	return QueryParam{Key: key, Value: value}
}

// Variables populates and owns the addon and portal configuration.
type Variables struct {
	settings   interfaces.Settings
	filesystem interfaces.Filesystem
	properties interfaces.Properties
	logger     interfaces.Logger
	args       []string

	initialized bool

	addonConfig  AddOnConfig
	portalConfig PortalConfig
}

// New creates Variables with default initialized holders.
func New(deps *Dependencies) (*Variables, error) {
	if deps == nil || deps.Settings == nil || deps.Filesystem == nil || deps.Properties == nil {
		return nil, fmt.Errorf("%w: settings, filesystem and properties are required", ErrMissingDependency)
	}

	log := deps.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Variables{
		settings:    deps.Settings,
		filesystem:  deps.Filesystem,
		properties:  deps.Properties,
		logger:      log,
		args:        deps.Args,
		addonConfig: DefaultAddOnConfig(),
	}, nil
}

// AddOn returns a copy of the addon configuration.
func (v *Variables) AddOn() AddOnConfig {
	return v.addonConfig
}

// Portal returns a copy of the portal configuration.
func (v *Variables) Portal() PortalConfig {
	return v.portalConfig
}

// InitGlobals refreshes the plugin URL and, on the first call or when the
// host raised the change property, loads everything else from the host.
func (v *Variables) InitGlobals() error {
	firstRun := !v.initialized
	v.initialized = true

	v.addonConfig.URL = v.arg(0)

	if !firstRun && v.properties.GetProperty(constants.PropertyChange) == "" {
		return nil
	}

	v.logger.Debug("First run, loading global variables",
		logger.Bool("first_run", firstRun))

	if err := v.properties.ClearProperty(constants.PropertyChange); err != nil {
		return fmt.Errorf("clear %s property: %w", constants.PropertyChange, err)
	}

	v.addonConfig.AddonID = v.settings.GetAddonInfo(constants.InfoID)
	v.addonConfig.Name = v.settings.GetAddonInfo(constants.InfoName)
	v.addonConfig.AddonDataPath = v.settings.GetAddonInfo(constants.InfoPath)

	tokenPath := v.filesystem.TranslatePath(v.settings.GetAddonInfo(constants.InfoProfile))
	if !v.filesystem.Exists(tokenPath) {
		if err := v.filesystem.Mkdirs(tokenPath); err != nil {
			return fmt.Errorf("create profile directory %s: %w", tokenPath, err)
		}
	}
	v.addonConfig.TokenPath = tokenPath

	handle, err := v.parseHandle()
	if err != nil {
		return err
	}
	v.addonConfig.Handle = handle

	v.portalConfig.MacCookie = constants.MACCookiePrefix + v.settings.GetSetting(constants.SettingMACAddress)
	v.portalConfig.DeviceID = v.GenerateDeviceID()
	v.portalConfig.DeviceID2 = v.portalConfig.DeviceID
	v.portalConfig.Signature = v.settings.GetSetting(constants.SettingSignature)
	v.portalConfig.SerialNumber = v.GenerateSerial()
	v.portalConfig.AlternativeContextPath = v.settings.GetSetting(constants.SettingAlternativeContextPath) == "true"

	v.setPortalAddresses()
	return nil
}

// GetHandle returns the addon handle of this invocation.
func (v *Variables) GetHandle() int {
	return v.addonConfig.Handle
}

// GetCustomThumbPath returns the path of a thumbnail shipped with the addon.
func (v *Variables) GetCustomThumbPath(thumbFileName string) string {
	return filepath.Join(v.addonConfig.AddonDataPath, constants.ResourcesDir, constants.MediaDir, thumbFileName)
}

// GetPluginURL builds an addon navigation URL from the plugin URL and params.
func (v *Variables) GetPluginURL(params []QueryParam) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(v.addonConfig.URL)
	_ = buf.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			_ = buf.WriteByte('&')
		}
		_, _ = buf.WriteString(url.QueryEscape(p.Key))
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(url.QueryEscape(p.Value))
	}
	return buf.String()
}

// GetPortalURL computes the portal API URL from the server address.
//
// An address ending in /c/ or /c points at the web client; the suffix is
// dropped and the context path appended directly. Otherwise the URL is the
// base URL plus /stalker_portal plus the context path.
func (v *Variables) GetPortalURL() string {
	contextPath := constants.ContextPathLoad
	if v.portalConfig.AlternativeContextPath {
		contextPath = constants.ContextPathPortal
	}

	address := v.portalConfig.ServerAddress

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	switch {
	case strings.HasSuffix(address, constants.ClientSuffixSlash):
		_, _ = buf.WriteString(strings.TrimSuffix(address, constants.ClientSuffixSlash))
	case strings.HasSuffix(address, constants.ClientSuffix):
		_, _ = buf.WriteString(strings.TrimSuffix(address, constants.ClientSuffix))
	default:
		_, _ = buf.WriteString(v.portalConfig.PortalBaseURL)
		_, _ = buf.WriteString(constants.StalkerPortalSegment)
	}
	_, _ = buf.WriteString(contextPath)

	return buf.String()
}

// GenerateSerial derives the serial number from the configured MAC address.
func (v *Variables) GenerateSerial() string {
	return Serial(v.settings.GetSetting(constants.SettingMACAddress))
}

// GenerateDeviceID derives the device id from the configured MAC address.
func (v *Variables) GenerateDeviceID() string {
	return DeviceID(v.settings.GetSetting(constants.SettingMACAddress))
}

// portalBaseURL returns scheme://host[:port] of the server address.
// Addresses net/url rejects are split by hand, so a malformed setting still
// yields a base URL instead of an error.
func (v *Variables) portalBaseURL() string {
	if u, err := url.Parse(v.portalConfig.ServerAddress); err == nil {
		return u.Scheme + "://" + u.Host
	}
	return splitBaseURL(v.portalConfig.ServerAddress)
}

func (v *Variables) setPortalAddresses() {
	v.portalConfig.ServerAddress = v.settings.GetSetting(constants.SettingServerAddress)
	v.portalConfig.PortalBaseURL = v.portalBaseURL()
	v.portalConfig.PortalURL = v.GetPortalURL()
}

// splitBaseURL cuts scheme://netloc out of address without validating it.
func splitBaseURL(address string) string {
	address = strings.TrimLeft(address, "\x00\x01\x02\x03\x04\x05\x06\x07\x08\t\n\x0b\x0c\r\x0e\x0f"+
		"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f ")

	scheme, rest, ok := strings.Cut(address, "://")
	if !ok {
		return "://"
	}

	netloc := rest
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		netloc = rest[:i]
	}
	return strings.ToLower(scheme) + "://" + netloc
}

func (v *Variables) arg(i int) string {
	if i < len(v.args) {
		return v.args[i]
	}
	return ""
}

func (v *Variables) parseHandle() (int, error) {
	if len(v.args) < 2 {
		return 0, fmt.Errorf("%w: addon handle", ErrMissingArgument)
	}

	handle, err := strconv.Atoi(v.args[1])
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidHandle, v.args[1], err)
	}
	return handle, nil
}
