package globals

import "github.com/attaebra/familytv/internal/constants"

// AddOnConfig holds the addon's own identity and paths.
type AddOnConfig struct {
	URL           string
	AddonID       string
	Name          string
	Handle        int
	AddonDataPath string
	MaxPageLimit  int
	MaxRetries    int
	TokenPath     string
}

// PortalConfig holds the portal connection identity.
type PortalConfig struct {
	MacCookie     string
	PortalURL     string
	DeviceID      string
	DeviceID2     string
	Signature     string
	SerialNumber  string
	PortalBaseURL string
	ServerAddress string

	// AlternativeContextPath selects /portal.php instead of /server/load.php.
	AlternativeContextPath bool
}

// DefaultAddOnConfig returns an addon config with paging and retry defaults.
func DefaultAddOnConfig() AddOnConfig {
	return AddOnConfig{
		MaxPageLimit: constants.DefaultMaxPageLimit,
		MaxRetries:   constants.DefaultMaxRetries,
	}
}
