package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidMinimalJSON(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.json", `{"cross": {"target": "thumbv7em-none-eabihf"}}`)

	plan, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if plan.Cross.Target != "thumbv7em-none-eabihf" {
		t.Errorf("Cross.Target = %q, want %q", plan.Cross.Target, "thumbv7em-none-eabihf")
	}
}

func TestLoad_ValidFullJSON(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.json", `{
		"format": {"program": "cargo", "args": ["fmt", "--all"]},
		"lint": {"program": "cargo", "args": ["clippy", "--workspace"]},
		"cross": {
			"checker": {"program": "cargo", "args": ["clippy"]},
			"target": "wasm32-unknown-unknown",
			"opt_in": {"package": "node-wasm", "feature": "wasm32-sdk"},
			"packages": ["consensus-core", "pow"],
			"matrix": {"package": "hashes", "features": ["no-asm"]}
		}
	}`)

	plan, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if plan.Format.Program != "cargo" {
		t.Errorf("Format.Program = %q, want %q", plan.Format.Program, "cargo")
	}
	if len(plan.Cross.Packages) != 2 {
		t.Errorf("len(Cross.Packages) = %d, want 2", len(plan.Cross.Packages))
	}
	if plan.Cross.OptIn == nil || plan.Cross.OptIn.Feature != "wasm32-sdk" {
		t.Errorf("Cross.OptIn = %+v, want feature wasm32-sdk", plan.Cross.OptIn)
	}
	if plan.Cross.Matrix == nil || plan.Cross.Matrix.Package != "hashes" {
		t.Errorf("Cross.Matrix = %+v, want package hashes", plan.Cross.Matrix)
	}
}

func TestLoad_YAMLEquivalentToJSON(t *testing.T) {
	t.Parallel()
	jsonPath := writeManifest(t, "crosscheck.json", `{
		"lint": {"program": "cargo", "args": ["clippy", "--workspace"]},
		"cross": {"target": "wasm32-unknown-unknown", "packages": ["pow", "txscript"]}
	}`)
	yamlPath := writeManifest(t, "crosscheck.yaml", `
lint:
  program: cargo
  args: [clippy, --workspace]
cross:
  target: wasm32-unknown-unknown
  packages:
    - pow
    - txscript
`)

	fromJSON, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}

	if fromJSON.Lint.Program != fromYAML.Lint.Program {
		t.Errorf("Lint.Program: json = %q, yaml = %q", fromJSON.Lint.Program, fromYAML.Lint.Program)
	}
	if len(fromJSON.Cross.Packages) != len(fromYAML.Cross.Packages) {
		t.Fatalf("Cross.Packages length: json = %d, yaml = %d",
			len(fromJSON.Cross.Packages), len(fromYAML.Cross.Packages))
	}
	for i := range fromJSON.Cross.Packages {
		if fromJSON.Cross.Packages[i] != fromYAML.Cross.Packages[i] {
			t.Errorf("Cross.Packages[%d]: json = %q, yaml = %q",
				i, fromJSON.Cross.Packages[i], fromYAML.Cross.Packages[i])
		}
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.json", `{not json`)

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid JSON")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Load(filepath.Join(t.TempDir(), "crosscheck.json")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestDefaultPlan_Complete(t *testing.T) {
	t.Parallel()
	plan := DefaultPlan()

	warnings, err := Validate(plan)
	if err != nil {
		t.Fatalf("Validate(DefaultPlan()) error = %v", err)
	}
	// The default tables intentionally list the matrix package in the
	// package list as well; that overlap is reported as a warning.
	if len(warnings) != 1 {
		t.Errorf("len(warnings) = %d, want 1 (overlap warning)", len(warnings))
	}

	if plan.Cross.Target != DefaultRestrictedTarget {
		t.Errorf("Cross.Target = %q, want %q", plan.Cross.Target, DefaultRestrictedTarget)
	}
	if len(plan.Cross.Packages) == 0 {
		t.Error("default Cross.Packages is empty")
	}
	if plan.Cross.OptIn == nil {
		t.Fatal("default Cross.OptIn is nil")
	}
	if plan.Cross.Matrix == nil {
		t.Fatal("default Cross.Matrix is nil")
	}
}

func TestLoadWithDefaults_PartialManifest(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.json", `{"cross": {"packages": ["math"]}}`)

	plan, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}

	// Overridden section kept as-is
	if len(plan.Cross.Packages) != 1 || plan.Cross.Packages[0] != "math" {
		t.Errorf("Cross.Packages = %v, want [math]", plan.Cross.Packages)
	}
	// Omitted sections filled from defaults
	if plan.Format.Program != "cargo" {
		t.Errorf("Format.Program = %q, want default cargo", plan.Format.Program)
	}
	if plan.Cross.Target != DefaultRestrictedTarget {
		t.Errorf("Cross.Target = %q, want default %q", plan.Cross.Target, DefaultRestrictedTarget)
	}
}

func TestLoadWithDefaults_ExplicitEmptyListsPreserved(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.json", `{"cross": {"packages": []}}`)

	plan, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}

	if plan.Cross.Packages == nil {
		t.Fatal("explicit empty packages list was replaced by defaults")
	}
	if len(plan.Cross.Packages) != 0 {
		t.Errorf("len(Cross.Packages) = %d, want 0", len(plan.Cross.Packages))
	}
}

func TestLoadAndValidate_SchemaRejection(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.json", `{"cross": {"target": 42}}`)

	_, _, err := LoadAndValidate(path)
	if err == nil {
		t.Fatal("LoadAndValidate() expected schema error for numeric target")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("error = %v, want schema validation failure", err)
	}
}

func TestLoadAndValidate_UnknownFieldRejected(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.json", `{"stages": ["fmt"]}`)

	if _, _, err := LoadAndValidate(path); err == nil {
		t.Error("LoadAndValidate() expected error for unknown top-level field")
	}
}

func TestLoadAndValidate_ValidYAML(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, "crosscheck.yaml", `
cross:
  target: wasm32-unknown-unknown
  packages: [consensus-core]
`)

	plan, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if plan.Lint.Program != "cargo" {
		t.Errorf("Lint.Program = %q, want default cargo", plan.Lint.Program)
	}
}
