package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/techsavvyash/stencil-cli/internal/branding"
)

// File name constants for the home directory convention.
const (
	PreferencesFile = "preferences.yaml"
	ConfigFile      = "config.yaml"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// HomeRoot returns the path to the stencil home directory.
// It checks the STENCIL_HOME environment variable first,
// then falls back to ~/.stencil.
func HomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// PreferencesPath returns the path to preferences.yaml within the home root.
func PreferencesPath() (string, error) {
	root, err := HomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PreferencesFile), nil
}

// EnsureHomeRoot creates the stencil home directory if it does not exist.
func EnsureHomeRoot() (string, error) {
	root, err := HomeRoot()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(root, DirPermNormal); err != nil {
		return "", fmt.Errorf("creating home directory %s: %w", root, err)
	}
	return root, nil
}
