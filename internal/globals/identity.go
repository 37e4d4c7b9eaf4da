package globals

import (
	"crypto/md5" //nolint:gosec // portal serials are MD5 derived
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// serialLength is the number of hex characters kept for a serial number.
const serialLength = 13

// DeviceID derives the 64 character uppercase hex device id from a MAC address.
// The MAC is hashed exactly as given.
func DeviceID(mac string) string {
	sum := sha256.Sum256([]byte(mac))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Serial derives the 13 character uppercase serial number from a MAC address.
// The MAC is hashed exactly as given.
func Serial(mac string) string {
	sum := md5.Sum([]byte(mac)) //nolint:gosec
	return strings.ToUpper(hex.EncodeToString(sum[:])[:serialLength])
}
