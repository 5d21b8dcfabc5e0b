package project

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/crosscheck-build/crosscheck/internal/config"
	"github.com/crosscheck-build/crosscheck/internal/errors"
)

// Project represents a loaded verification workspace.
type Project struct {
	Root         string
	ManifestPath string // empty when the built-in default plan is in effect
	Plan         *config.Plan
	Env          map[string]string // extra environment from the workspace .env
	Warnings     []string
}

// LoadProject finds and loads a workspace from the current directory.
func LoadProject() (*Project, error) {
	root, manifest, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root, manifest)
}

// LoadProjectFrom loads a workspace from a specified root directory.
// When manifest is empty the built-in default plan is used.
func LoadProjectFrom(root, manifest string) (*Project, error) {
	var (
		plan     *config.Plan
		warnings []string
	)

	if manifest == "" {
		plan = config.DefaultPlan()
	} else {
		var err error
		plan, warnings, err = config.LoadAndValidate(manifest)
		if err != nil {
			return nil, errors.ConfigWrap(err, "failed to load manifest: "+err.Error())
		}
	}

	env, err := loadEnvFile(filepath.Join(root, EnvFileName))
	if err != nil {
		return nil, err
	}

	return &Project{
		Root:         root,
		ManifestPath: manifest,
		Plan:         plan,
		Env:          env,
		Warnings:     warnings,
	}, nil
}

// loadEnvFile reads the optional workspace .env file. A missing file is not
// an error; the returned map is merged into every tool invocation's
// environment.
func loadEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Environmentf("failed to stat %s: %v", path, err)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Environmentf("failed to parse %s: %v", path, err)
	}
	return env, nil
}
