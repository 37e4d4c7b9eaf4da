// Package interfaces defines contracts for the host collaborators the addon depends on.
package interfaces

import "github.com/attaebra/familytv/internal/logger"

// Settings defines the contract for the host settings store.
// Missing keys yield an empty string.
type Settings interface {
	GetSetting(key string) string
	GetAddonInfo(key string) string
}

// Filesystem defines the contract for the host virtual filesystem.
type Filesystem interface {
	TranslatePath(path string) string
	Exists(path string) bool
	Mkdirs(path string) error
}

// Properties defines the contract for the host shared property namespace.
// An absent property reads as an empty string.
type Properties interface {
	GetProperty(key string) string
	SetProperty(key, value string) error
	ClearProperty(key string) error
}

// Logger defines the contract for structured logging.
type Logger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
