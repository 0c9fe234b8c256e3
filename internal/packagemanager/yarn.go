package packagemanager

import "context"

// YarnManager installs dependencies with yarn.
type YarnManager struct{}

// Name returns "yarn".
func (m *YarnManager) Name() string { return ManagerYarn }

// Install runs `yarn install` in dir.
func (m *YarnManager) Install(ctx context.Context, dir string) error {
	return runManagerCommand(ctx, ManagerYarn, dir, "install")
}

// Add runs `yarn add <pkgs>` in dir.
func (m *YarnManager) Add(ctx context.Context, dir string, pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := append([]string{"add"}, pkgs...)
	return runManagerCommand(ctx, ManagerYarn, dir, args...)
}
