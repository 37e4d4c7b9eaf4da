// Package utils provides utility functions shared across the application.
package utils

import (
	"fmt"

	"github.com/attaebra/familytv/internal/logger"
)

// LogAndWrapError logs an error and returns a formatted error with the original wrapped.
// This function ensures consistent error handling and logging throughout the application.
func LogAndWrapError(err error, format string, args ...interface{}) error {
	if err != nil {
		logger.Error("❌ "+fmt.Sprintf(format, args...),
			logger.ErrorField("error", err))
		return fmt.Errorf(format+": %w", append(args, err)...)
	}
	return nil
}
