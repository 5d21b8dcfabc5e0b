// Package mocks provides shared test doubles for crosscheck packages.
package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/crosscheck-build/crosscheck/internal/invoke"
)

// Call records one Invoke call.
type Call struct {
	Program string
	Args    []string
	Opts    invoke.Options
}

// Line returns the call as a single command line, convenient for matching.
func (c Call) Line() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// Invoker implements invoke.Invoker for testing.
// Use NewInvoker() to create instances with a fluent builder API.
// By default every call returns status 0.
type Invoker struct {
	// InvokeFunc, when set, decides the outcome of every call.
	InvokeFunc func(call Call) (int, error)

	statusAt map[int]int // 1-based call index -> status
	errAt    map[int]error

	mu    sync.Mutex
	calls []Call
}

// NewInvoker creates a new mock invoker that succeeds on every call.
func NewInvoker() *Invoker {
	return &Invoker{
		statusAt: make(map[int]int),
		errAt:    make(map[int]error),
	}
}

// WithInvokeFunc sets the function deciding every call's outcome.
func (m *Invoker) WithInvokeFunc(fn func(call Call) (int, error)) *Invoker {
	m.InvokeFunc = fn
	return m
}

// FailAt makes the n-th call (1-based) return the given status.
func (m *Invoker) FailAt(n, status int) *Invoker {
	m.statusAt[n] = status
	return m
}

// ErrAt makes the n-th call (1-based) return the given error (launch failure).
func (m *Invoker) ErrAt(n int, err error) *Invoker {
	m.errAt[n] = err
	return m
}

// Invoke implements invoke.Invoker.
func (m *Invoker) Invoke(_ context.Context, program string, args []string, opts invoke.Options) (int, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Program: program, Args: args, Opts: opts})
	n := len(m.calls)
	m.mu.Unlock()

	if m.InvokeFunc != nil {
		return m.InvokeFunc(Call{Program: program, Args: args, Opts: opts})
	}
	if err, ok := m.errAt[n]; ok {
		return 0, err
	}
	return m.statusAt[n], nil
}

// Calls returns a copy of all recorded calls in order.
func (m *Invoker) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of recorded calls.
func (m *Invoker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Lines returns every recorded call as a command line, in order.
func (m *Invoker) Lines() []string {
	calls := m.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.Line()
	}
	return lines
}
