package utils

import (
	"errors"
	"testing"
)

func TestLogAndWrapError(t *testing.T) {
	base := errors.New("settings file missing")

	err := LogAndWrapError(base, "failed to load %s", "settings.yaml")
	if err == nil {
		t.Fatal("Expected wrapped error, got nil")
	}
	if !errors.Is(err, base) {
		t.Errorf("Expected wrapped error to match the original")
	}
	if err.Error() != "failed to load settings.yaml: settings file missing" {
		t.Errorf("Unexpected message: %s", err.Error())
	}

	if LogAndWrapError(nil, "nothing") != nil {
		t.Errorf("Expected nil for nil error")
	}
}
