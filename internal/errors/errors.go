// Package errors provides structured error types and exit codes for crosscheck.
package errors

import (
	"fmt"
)

// Exit codes produced by crosscheck itself. A failing verification stage
// bypasses this taxonomy entirely: the underlying tool's exit status is
// propagated verbatim.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (tool failed without a status, etc.)
	ExitConfigError      = 2 // Configuration error (invalid manifest, etc.)
	ExitEnvironmentError = 3 // Environment error (no workspace root, missing tool, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindEnvironment
)

// CheckError is the base error type for crosscheck.
type CheckError struct {
	Kind    ErrorKind
	Message string
	Stage   string // Logical check name if applicable
	Cause   error  // Underlying error
}

func (e *CheckError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s", e.Stage, e.Message)
	}
	return e.Message
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *CheckError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *CheckError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *CheckError {
	return &CheckError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *CheckError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *CheckError {
	return &CheckError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *CheckError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// ConfigWrap wraps an error as a configuration error.
func ConfigWrap(err error, message string) *CheckError {
	return &CheckError{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// StageError creates an error for a specific logical check.
func StageError(stage, message string) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Stage:   stage,
		Message: message,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ce, ok := err.(*CheckError); ok {
		return ce.ExitCode()
	}
	return ExitRuntimeError
}
