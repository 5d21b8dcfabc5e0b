package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crosscheck-build/crosscheck/internal/errors"
	"github.com/crosscheck-build/crosscheck/internal/invoke"
	"github.com/crosscheck-build/crosscheck/internal/pipeline"
	"github.com/crosscheck-build/crosscheck/internal/project"
)

// loadWorkspace loads the workspace and handles errors uniformly.
// Returns the project and exit code 0 on success, or nil and the appropriate
// exit code on failure (2 for config errors, 3 for environment errors).
func loadWorkspace(opts *GlobalOptions) (*project.Project, int) {
	var (
		proj *project.Project
		err  error
	)

	if opts.Manifest != "" {
		abs, absErr := filepath.Abs(opts.Manifest)
		if absErr != nil {
			out.ErrorPrefix("%v", absErr)
			return nil, errors.ExitConfigError
		}
		proj, err = project.LoadProjectFrom(filepath.Dir(abs), abs)
	} else {
		proj, err = project.LoadProject()
	}

	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}

	for _, warning := range proj.Warnings {
		out.Warning("%s", warning)
	}

	return proj, 0
}

// cmdRun executes the verification pipeline and propagates the first failing
// tool's exit status.
func cmdRun(opts *GlobalOptions) int {
	proj, exitCode := loadWorkspace(opts)
	if proj == nil {
		return exitCode
	}

	p := pipeline.New(proj.Plan, invoke.NewExec(), out, invoke.Options{
		Dir: proj.Root,
		Env: proj.Env,
	})

	result := p.Run(context.Background())
	if !result.OK() {
		out.FinalFailure("Verification failed at %s.", result.Stage)
		return result.Status
	}

	out.FinalSuccess("All checks passed.")
	return errors.ExitSuccess
}

// cmdPlan lists the expanded invocation list without running anything.
func cmdPlan(opts *GlobalOptions) int {
	proj, exitCode := loadWorkspace(opts)
	if proj == nil {
		return exitCode
	}

	titleCase := cases.Title(language.English)

	out.Section(titleCase.String(pipeline.StageFormat))
	out.Command(proj.Plan.Format.Program, proj.Plan.Format.Args)

	out.Section(titleCase.String(pipeline.StageLint))
	out.Command(proj.Plan.Lint.Program, proj.Plan.Lint.Args)

	out.Section(titleCase.String("cross-target"))
	crossInvs := pipeline.ExpandCross(&proj.Plan.Cross)
	if len(crossInvs) == 0 {
		out.Hint("  (no cross-target checks configured)")
	}
	for _, inv := range crossInvs {
		out.Command(inv.Program, inv.Args)
	}

	out.Println("")
	out.Item("Total checks", strconv.Itoa(len(pipeline.Expand(proj.Plan))))
	return errors.ExitSuccess
}

// cmdConfig shows or validates the effective plan.
func cmdConfig(args []string, opts *GlobalOptions) int {
	if len(args) > 0 && args[0] == "validate" {
		return cmdConfigValidate(opts)
	}

	proj, exitCode := loadWorkspace(opts)
	if proj == nil {
		return exitCode
	}

	data, err := json.MarshalIndent(proj.Plan, "", "  ")
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}

	out.Println("%s", string(data))
	return errors.ExitSuccess
}

// cmdConfigValidate checks the manifest and reports the source of the plan.
func cmdConfigValidate(opts *GlobalOptions) int {
	proj, exitCode := loadWorkspace(opts)
	if proj == nil {
		return exitCode
	}

	if proj.ManifestPath == "" {
		out.Info("no manifest found; the built-in plan is in effect")
	} else {
		out.Info("manifest %s is valid", proj.ManifestPath)
	}
	return errors.ExitSuccess
}
