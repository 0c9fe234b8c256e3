// Package packagemanager runs dependency installation for generated projects
// through a fixed set of JavaScript package managers. Dispatch selects the
// implementation for a manager name; unknown names yield an implementation
// whose methods return a configuration error naming the supported set.
package packagemanager

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Supported manager identifiers.
const (
	ManagerNpm  = "npm"
	ManagerYarn = "yarn"
	ManagerPnpm = "pnpm"
)

// Manager abstracts one package manager binary.
type Manager interface {
	// Name returns the manager identifier (e.g., "npm").
	Name() string
	// Install runs the manager's install command in dir.
	Install(ctx context.Context, dir string) error
	// Add installs the named packages into the project at dir.
	Add(ctx context.Context, dir string, pkgs ...string) error
}

// Known returns the supported manager names in menu order.
func Known() []string {
	return []string{ManagerNpm, ManagerYarn, ManagerPnpm}
}

// Dispatch returns the Manager implementation for the given name.
// Returns an error-producing manager for unknown values.
func Dispatch(name string) Manager {
	switch name {
	case ManagerNpm:
		return &NpmManager{}
	case ManagerYarn:
		return &YarnManager{}
	case ManagerPnpm:
		return &PnpmManager{}
	default:
		return &unknownManager{name: name}
	}
}

// Validate returns the configuration error for an unknown manager name, or
// nil when the name is supported.
func Validate(name string) error {
	for _, known := range Known() {
		if name == known {
			return nil
		}
	}
	return unknownErr(name)
}

func unknownErr(name string) error {
	return fmt.Errorf("unknown package manager %q: supported managers are %s", name, strings.Join(Known(), ", "))
}

// unknownManager is returned when the manager identifier is not recognized.
type unknownManager struct {
	name string
}

func (u *unknownManager) Name() string { return u.name }

func (u *unknownManager) Install(_ context.Context, _ string) error {
	return unknownErr(u.name)
}

func (u *unknownManager) Add(_ context.Context, _ string, _ ...string) error {
	return unknownErr(u.name)
}

// runManagerCommand locates the manager binary and runs it with args in dir.
// Output is captured and embedded in the returned error on failure.
func runManagerCommand(ctx context.Context, bin, dir string, args ...string) error {
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("%s is not installed or not on PATH: %w", bin, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s in %s: %w\n%s", bin, strings.Join(args, " "), dir, err, strings.TrimSpace(string(output)))
	}
	return nil
}
