package crosscheck_test

import (
	"testing"

	"github.com/crosscheck-build/crosscheck/internal/errors"
	"github.com/crosscheck-build/crosscheck/pkg/crosscheck"
)

// TestExitCodeValues verifies that exit code constants have the expected values.
func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", crosscheck.ExitSuccess, 0},
		{"ExitFailure", crosscheck.ExitFailure, 1},
		{"ExitConfigError", crosscheck.ExitConfigError, 2},
		{"ExitEnvError", crosscheck.ExitEnvError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("crosscheck.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodeConsistency verifies that public exit code constants match
// the internal errors package constants. This prevents drift between
// the public API and internal implementation.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"Success", crosscheck.ExitSuccess, errors.ExitSuccess},
		{"Failure/RuntimeError", crosscheck.ExitFailure, errors.ExitRuntimeError},
		{"ConfigError", crosscheck.ExitConfigError, errors.ExitConfigError},
		{"EnvError/EnvironmentError", crosscheck.ExitEnvError, errors.ExitEnvironmentError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("exit code mismatch: crosscheck constant = %d, errors constant = %d",
					tt.public, tt.internal)
			}
		})
	}
}
