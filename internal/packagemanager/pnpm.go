package packagemanager

import "context"

// PnpmManager installs dependencies with pnpm.
type PnpmManager struct{}

// Name returns "pnpm".
func (m *PnpmManager) Name() string { return ManagerPnpm }

// Install runs `pnpm install` in dir.
func (m *PnpmManager) Install(ctx context.Context, dir string) error {
	return runManagerCommand(ctx, ManagerPnpm, dir, "install")
}

// Add runs `pnpm add <pkgs>` in dir.
func (m *PnpmManager) Add(ctx context.Context, dir string, pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := append([]string{"add"}, pkgs...)
	return runManagerCommand(ctx, ManagerPnpm, dir, args...)
}
