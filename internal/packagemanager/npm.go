package packagemanager

import "context"

// NpmManager installs dependencies with npm.
type NpmManager struct{}

// Name returns "npm".
func (m *NpmManager) Name() string { return ManagerNpm }

// Install runs `npm install` in dir. --prefer-offline keeps repeat scaffolds
// fast on machines with a warm cache.
func (m *NpmManager) Install(ctx context.Context, dir string) error {
	return runManagerCommand(ctx, ManagerNpm, dir, "install", "--prefer-offline")
}

// Add runs `npm install --save <pkgs>` in dir.
func (m *NpmManager) Add(ctx context.Context, dir string, pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := append([]string{"install", "--save"}, pkgs...)
	return runManagerCommand(ctx, ManagerNpm, dir, args...)
}
