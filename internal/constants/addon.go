// Package constants provides shared constants used throughout the application.
package constants

// Addon settings keys read from the host settings store.
const (
	// SettingMACAddress is the user supplied MAC address used as identity seed.
	SettingMACAddress = "mac_address"

	// SettingSignature is the opaque portal signature.
	SettingSignature = "signature"

	// SettingServerAddress is the raw portal address entered by the user.
	SettingServerAddress = "server_address"

	// SettingAlternativeContextPath selects the /portal.php context path when "true".
	SettingAlternativeContextPath = "alternative_context_path"
)

// Addon info keys provided by the host.
const (
	InfoID      = "id"
	InfoName    = "name"
	InfoPath    = "path"
	InfoProfile = "profile"
)

// PropertyChange is the shared property set by the host when settings were edited.
const PropertyChange = "change"

// Paging and retry defaults handed to downstream request code.
const (
	DefaultMaxPageLimit = 30
	DefaultMaxRetries   = 3
)
