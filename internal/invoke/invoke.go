// Package invoke runs external toolchain commands and reports their exit status.
package invoke

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Options contains options for command execution.
type Options struct {
	Dir string            // Working directory (workspace root)
	Env map[string]string // Additional environment variables
}

// Invoker runs one external command at a time, blocking until it exits.
// Implementations must not interpret the tool's output; only the numeric
// exit status matters.
type Invoker interface {
	// Invoke runs program with args and returns its exit status.
	// A non-nil error means the process could not be started or did not
	// report a status; the status value is meaningless in that case.
	Invoke(ctx context.Context, program string, args []string, opts Options) (int, error)
}

// Exec is the production Invoker backed by os/exec.
// The tool's stdout and stderr are passed through untouched so its
// diagnostics reach the user directly.
type Exec struct{}

// NewExec creates the subprocess-backed Invoker.
func NewExec() *Exec {
	return &Exec{}
}

// Invoke runs the command as a synchronous subprocess.
func (e *Exec) Invoke(ctx context.Context, program string, args []string, opts Options) (int, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	// Pass through environment, then layer workspace extras on top
	cmd.Env = os.Environ()
	for k, v := range opts.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Terminated by signal: no exit status to propagate
		return 0, err
	}

	// Launch failure (program missing, permission denied, ...)
	return 0, err
}
