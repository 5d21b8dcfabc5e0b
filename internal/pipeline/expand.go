package pipeline

import (
	"fmt"

	"github.com/crosscheck-build/crosscheck/internal/config"
)

// Logical names for the fixed stages.
const (
	StageFormat = "fmt"
	StageLint   = "lint"
)

// Invocation is one concrete external check: a logical name for diagnostics
// plus the command to run.
type Invocation struct {
	Stage   string
	Program string
	Args    []string
}

// Expand turns a plan into the complete ordered invocation list:
// format, lint, then the expanded cross-target checks.
// Expansion order is execution order.
func Expand(plan *config.Plan) []Invocation {
	invs := []Invocation{
		{Stage: StageFormat, Program: plan.Format.Program, Args: plan.Format.Args},
		{Stage: StageLint, Program: plan.Lint.Program, Args: plan.Lint.Args},
	}
	return append(invs, ExpandCross(&plan.Cross)...)
}

// ExpandCross turns the cross-target parameter sets into their ordered
// invocation list: the opt-in check, then one check per package, then one
// check per matrix feature. No deduplication, no reordering.
func ExpandCross(cross *config.CrossConfig) []Invocation {
	var invs []Invocation

	if cross.OptIn != nil {
		invs = append(invs, crossInvocation(cross, cross.OptIn.Package, cross.OptIn.Feature))
	}

	for _, pkg := range cross.Packages {
		invs = append(invs, crossInvocation(cross, pkg, ""))
	}

	if cross.Matrix != nil {
		for _, feature := range cross.Matrix.Features {
			invs = append(invs, crossInvocation(cross, cross.Matrix.Package, feature))
		}
	}

	return invs
}

// crossInvocation builds one restricted-target check. The feature selector is
// omitted when empty (default features).
func crossInvocation(cross *config.CrossConfig, pkg, feature string) Invocation {
	args := append([]string{}, cross.Checker.Args...)
	args = append(args, "-p", pkg)
	if feature != "" {
		args = append(args, "--features", feature)
	}
	args = append(args, "--target", cross.Target)

	stage := fmt.Sprintf("%s [%s]", pkg, cross.Target)
	if feature != "" {
		stage = fmt.Sprintf("%s +%s [%s]", pkg, feature, cross.Target)
	}

	return Invocation{
		Stage:   stage,
		Program: cross.Checker.Program,
		Args:    args,
	}
}
