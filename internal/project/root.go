// Package project provides workspace discovery and loading functionality.
package project

import (
	"os"
	"path/filepath"

	"github.com/crosscheck-build/crosscheck/internal/errors"
)

// Manifest file names, checked in order. The first match wins.
var manifestNames = []string{
	"crosscheck.json",
	"crosscheck.yaml",
	"crosscheck.yml",
}

// WorkspaceMarkerFile marks a workspace root when no crosscheck manifest
// exists; the built-in default plan is used in that case.
const WorkspaceMarkerFile = "Cargo.toml"

// EnvFileName is the optional per-workspace environment file.
const EnvFileName = ".env"

// ErrNoWorkspaceRoot is returned when neither a crosscheck manifest nor a
// workspace marker file is found. It carries the environment exit code.
var ErrNoWorkspaceRoot = errors.Environment("no crosscheck manifest or Cargo.toml found: not inside a workspace (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds a
// workspace root. It returns the root directory and the manifest path, or an
// empty manifest path when the root was identified by the marker file only.
func FindRoot() (root, manifest string, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds a workspace root.
func FindRootFrom(startDir string) (root, manifest string, err error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", err
	}

	for {
		for _, name := range manifestNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return dir, path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, WorkspaceMarkerFile)); err == nil {
			return dir, "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", "", ErrNoWorkspaceRoot
		}
		dir = parent
	}
}
