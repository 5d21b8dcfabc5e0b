// Package schema provides JSON schema validation for crosscheck manifest files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/crosscheck-build/crosscheck/schema"
)

var (
	planSchema  *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchema compiles the embedded plan schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		planData, err := schemafs.FS.ReadFile("plan.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read plan schema: %w", err)
			return
		}

		planDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(planData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal plan schema: %w", err)
			return
		}

		if err := compiler.AddResource("plan.schema.json", planDoc); err != nil {
			compileErr = fmt.Errorf("add plan schema resource: %w", err)
			return
		}

		planSchema, err = compiler.Compile("plan.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile plan schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidatePlanJSON validates JSON manifest data against the plan schema.
func ValidatePlanJSON(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := planSchema.Validate(v); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}

	return nil
}

// ValidatePlanYAML validates YAML manifest data against the plan schema.
// The document is round-tripped through JSON so both manifest formats are
// checked against the same schema.
func ValidatePlanYAML(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		// Empty manifest means "use the defaults"
		return nil
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize YAML: %w", err)
	}

	var v any
	if err := json.Unmarshal(normalized, &v); err != nil {
		return fmt.Errorf("normalize YAML: %w", err)
	}

	if err := planSchema.Validate(v); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}

	return nil
}
