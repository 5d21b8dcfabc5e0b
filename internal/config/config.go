// Package config provides the verification plan: loading, defaults, and validation.
package config

// Plan is the complete stage/parameter table for one verification run.
// It is constructed once at startup and read-only thereafter.
type Plan struct {
	Format Command     `json:"format" yaml:"format"`
	Lint   Command     `json:"lint" yaml:"lint"`
	Cross  CrossConfig `json:"cross" yaml:"cross"`
}

// Command is an external program plus its fixed argument list.
type Command struct {
	Program string   `json:"program" yaml:"program"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// CrossConfig parameterizes the restricted-target verification stage.
// Selector arguments (package, target, feature) are appended to Checker
// by the parameter expander.
type CrossConfig struct {
	Checker  Command        `json:"checker" yaml:"checker"`
	Target   string         `json:"target" yaml:"target"`
	OptIn    *OptInCheck    `json:"opt_in,omitempty" yaml:"opt_in,omitempty"`
	Packages []string       `json:"packages,omitempty" yaml:"packages,omitempty"`
	Matrix   *FeatureMatrix `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// OptInCheck names a package that only compiles with an explicit opt-in feature.
type OptInCheck struct {
	Package string `json:"package" yaml:"package"`
	Feature string `json:"feature" yaml:"feature"`
}

// FeatureMatrix re-checks one package once per feature, in declaration order.
type FeatureMatrix struct {
	Package  string   `json:"package" yaml:"package"`
	Features []string `json:"features" yaml:"features"`
}
