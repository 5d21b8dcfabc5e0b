// Package crosscheck provides public constants for external tools and CI
// scripts integrating with crosscheck.
package crosscheck

// Exit codes returned by the crosscheck CLI.
// These constants allow wrapper scripts to check exit codes symbolically
// rather than using magic numbers. A failed verification stage propagates
// the underlying tool's status verbatim, so any non-zero value is possible;
// the constants below cover the codes crosscheck produces itself.
const (
	// ExitSuccess indicates every stage of the verification pipeline passed.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure when no more specific status
	// is available (a tool failed without reporting an exit status).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid manifest,
	// schema validation failure, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (workspace root not
	// found, tool missing from PATH, etc.).
	ExitEnvError = 3
)
