package constants

// Portal URL segments.
const (
	// StalkerPortalSegment is appended to the base URL in the default layout.
	StalkerPortalSegment = "/stalker_portal"

	// ContextPathLoad is the default portal API entry point.
	ContextPathLoad = "/server/load.php"

	// ContextPathPortal is the alternative portal API entry point.
	ContextPathPortal = "/portal.php"

	// ClientSuffixSlash and ClientSuffix mark a server address that points at the web client.
	ClientSuffixSlash = "/c/"
	ClientSuffix      = "/c"
)

// MACCookiePrefix prefixes the MAC address in the portal cookie.
const MACCookiePrefix = "mac="

// Thumbnail location below the addon installation directory.
const (
	ResourcesDir = "resources"
	MediaDir     = "media"
)

// Special path roots understood by the host filesystem.
const (
	SpecialScheme  = "special://"
	SpecialHome    = "home"
	SpecialProfile = "profile"
)

// DefaultHistorySize is the number of bytes of recent log output kept in memory.
const DefaultHistorySize = 64 * 1024
