// Package pipeline drives the fixed verification stage list to completion or
// first failure.
package pipeline

import (
	"context"

	"github.com/crosscheck-build/crosscheck/internal/config"
	"github.com/crosscheck-build/crosscheck/internal/errors"
	"github.com/crosscheck-build/crosscheck/internal/invoke"
	"github.com/crosscheck-build/crosscheck/internal/output"
)

// RunResult identifies the first failing check, or overall success.
// A zero Status with an empty Stage is the synthetic all-pass result.
type RunResult struct {
	Stage  string
	Status int
}

// OK reports whether every check passed.
func (r RunResult) OK() bool {
	return r.Status == 0
}

// Pipeline executes the expanded invocation list sequentially. Exactly one
// subprocess is in flight at a time; the first non-zero status aborts the run.
type Pipeline struct {
	plan    *config.Plan
	invoker invoke.Invoker
	out     *output.Writer
	opts    invoke.Options
}

// New creates a Pipeline. The plan is treated as read-only.
func New(plan *config.Plan, invoker invoke.Invoker, out *output.Writer, opts invoke.Options) *Pipeline {
	return &Pipeline{
		plan:    plan,
		invoker: invoker,
		out:     out,
		opts:    opts,
	}
}

// Run executes every check in order and returns at the first failure.
// A later check never starts while an earlier one is mid-execution, and
// nothing after a failed check runs.
func (p *Pipeline) Run(ctx context.Context) RunResult {
	for _, inv := range Expand(p.plan) {
		// Stop cleanly if the run was interrupted between checks
		if ctx.Err() != nil {
			p.out.ErrorPrefix("interrupted: %v", ctx.Err())
			return RunResult{Stage: inv.Stage, Status: errors.ExitRuntimeError}
		}

		p.out.StageStart(inv.Stage)
		p.out.Command(inv.Program, inv.Args)

		status, err := p.invoker.Invoke(ctx, inv.Program, inv.Args, p.opts)
		if err != nil {
			// Tool could not run at all; surfaces like any other failure,
			// with the environment exit code since there is no tool status
			// to propagate.
			p.out.ErrorPrefix("%s: %v", inv.Stage, err)
			p.out.StageFailed(inv.Stage, errors.ExitEnvironmentError)
			return RunResult{Stage: inv.Stage, Status: errors.ExitEnvironmentError}
		}
		if status != 0 {
			p.out.StageFailed(inv.Stage, status)
			return RunResult{Stage: inv.Stage, Status: status}
		}

		p.out.StageSuccess(inv.Stage)
	}

	return RunResult{}
}
