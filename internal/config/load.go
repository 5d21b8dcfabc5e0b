package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crosscheck-build/crosscheck/internal/schema"
)

// Load reads and parses a manifest file (JSON or YAML, by extension).
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var plan Plan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("failed to parse manifest file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("failed to parse manifest file: %w", err)
		}
	}

	return &plan, nil
}

// LoadWithDefaults reads a manifest file and applies default values.
func LoadWithDefaults(path string) (*Plan, error) {
	plan, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(plan)
	return plan, nil
}

// LoadAndValidate reads a manifest file, checks it against the embedded
// schema, applies defaults, validates the result, and returns warnings.
func LoadAndValidate(path string) (*Plan, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = schema.ValidatePlanYAML(data)
	default:
		err = schema.ValidatePlanJSON(data)
	}
	if err != nil {
		return nil, nil, err
	}

	plan, err := Load(path)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(plan)

	warnings, err := Validate(plan)
	if err != nil {
		return nil, warnings, err
	}

	return plan, warnings, nil
}
