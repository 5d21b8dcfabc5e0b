package config

import (
	"fmt"
	"regexp"
)

// Package and feature selectors: lowercase letters, digits, hyphens, underscores.
var selectorPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidationError represents a plan validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a plan for errors and returns warnings for non-fatal issues.
func Validate(plan *Plan) (warnings []string, err error) {
	if err := validateCommand("format", plan.Format); err != nil {
		return nil, err
	}
	if err := validateCommand("lint", plan.Lint); err != nil {
		return nil, err
	}
	if err := validateCross(&plan.Cross); err != nil {
		return nil, err
	}

	return crossWarnings(&plan.Cross), nil
}

func validateCommand(field string, cmd Command) error {
	if cmd.Program == "" {
		return &ValidationError{
			Field:   field + ".program",
			Message: "is required",
		}
	}
	return nil
}

func validateCross(cross *CrossConfig) error {
	if err := validateCommand("cross.checker", cross.Checker); err != nil {
		return err
	}

	if cross.Target == "" {
		return &ValidationError{
			Field:   "cross.target",
			Message: "is required",
		}
	}

	if cross.OptIn != nil {
		if err := validateSelector("cross.opt_in.package", cross.OptIn.Package); err != nil {
			return err
		}
		if err := validateSelector("cross.opt_in.feature", cross.OptIn.Feature); err != nil {
			return err
		}
	}

	for i, pkg := range cross.Packages {
		if err := validateSelector(fmt.Sprintf("cross.packages[%d]", i), pkg); err != nil {
			return err
		}
	}

	if cross.Matrix != nil {
		if err := validateSelector("cross.matrix.package", cross.Matrix.Package); err != nil {
			return err
		}
		for i, feature := range cross.Matrix.Features {
			if err := validateSelector(fmt.Sprintf("cross.matrix.features[%d]", i), feature); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateSelector(field, value string) error {
	if value == "" {
		return &ValidationError{
			Field:   field,
			Message: "is required",
		}
	}
	if !selectorPattern.MatchString(value) {
		return &ValidationError{
			Field:   field,
			Message: "must match pattern ^[a-z0-9][a-z0-9_-]*$ (lowercase letters, digits, hyphens, underscores)",
		}
	}
	return nil
}

// crossWarnings reports non-fatal oddities in the cross-target tables.
// Overlap between the package list and the feature matrix package is legal
// (the invocations differ by feature set) but worth surfacing.
func crossWarnings(cross *CrossConfig) []string {
	var warnings []string

	seen := make(map[string]bool)
	for _, pkg := range cross.Packages {
		if seen[pkg] {
			warnings = append(warnings, fmt.Sprintf("cross.packages lists %q more than once; it will be checked each time", pkg))
		}
		seen[pkg] = true
	}

	if cross.Matrix != nil && seen[cross.Matrix.Package] {
		warnings = append(warnings, fmt.Sprintf("package %q appears in both cross.packages and cross.matrix; it will be checked in both sub-stages", cross.Matrix.Package))
	}

	return warnings
}
