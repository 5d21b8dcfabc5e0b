package config

// Default verification plan values. These mirror the fixed check tables the
// workspace has always been verified with; a crosscheck.json/crosscheck.yaml
// manifest overrides them section by section.
const (
	// DefaultRestrictedTarget is the embedded compilation target every
	// cross-target invocation is checked against.
	DefaultRestrictedTarget = "wasm32-unknown-unknown"

	// DefaultOptInPackage only compiles under the restricted target when
	// its browser SDK feature is explicitly enabled.
	DefaultOptInPackage = "node-wasm"
	DefaultOptInFeature = "wasm32-sdk"

	// DefaultMatrixPackage is re-checked once per feature below.
	DefaultMatrixPackage = "hashes"
)

// DefaultPlan returns the built-in verification plan.
func DefaultPlan() *Plan {
	return &Plan{
		Format: Command{
			Program: "cargo",
			Args:    []string{"fmt", "--all"},
		},
		Lint: Command{
			Program: "cargo",
			Args:    []string{"clippy", "--workspace", "--tests", "--benches"},
		},
		Cross: CrossConfig{
			Checker: Command{
				Program: "cargo",
				Args:    []string{"clippy"},
			},
			Target: DefaultRestrictedTarget,
			OptIn: &OptInCheck{
				Package: DefaultOptInPackage,
				Feature: DefaultOptInFeature,
			},
			// Declaration order is execution order. The "hashes" entry also
			// appears in the feature matrix below; the sets are kept
			// independent and are never deduplicated across sub-stages.
			Packages: []string{
				"consensus-core",
				"addresses",
				"txscript",
				"pow",
				"hashes",
				"wallet-core",
			},
			Matrix: &FeatureMatrix{
				Package:  DefaultMatrixPackage,
				Features: []string{"no-asm", "parallel"},
			},
		},
	}
}

// applyDefaults fills in default values for unset plan sections.
// Sections are replaced wholesale: a manifest that sets cross.packages to an
// empty list keeps that empty list (the sub-stage then passes vacuously).
func applyDefaults(plan *Plan) {
	def := DefaultPlan()

	if plan.Format.Program == "" {
		plan.Format = def.Format
	}
	if plan.Lint.Program == "" {
		plan.Lint = def.Lint
	}
	if plan.Cross.Checker.Program == "" {
		plan.Cross.Checker = def.Cross.Checker
	}
	if plan.Cross.Target == "" {
		plan.Cross.Target = def.Cross.Target
	}
	if plan.Cross.OptIn == nil {
		plan.Cross.OptIn = def.Cross.OptIn
	}
	if plan.Cross.Packages == nil {
		plan.Cross.Packages = def.Cross.Packages
	}
	if plan.Cross.Matrix == nil {
		plan.Cross.Matrix = def.Cross.Matrix
	}
}
