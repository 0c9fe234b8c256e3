package cli

import (
	"testing"

	"github.com/techsavvyash/stencil-cli/internal/config"
	"github.com/techsavvyash/stencil-cli/internal/orchestrator"
	"github.com/techsavvyash/stencil-cli/internal/userdata"
)

func TestLoadDefaultsPrecedence(t *testing.T) {
	t.Setenv("STENCIL_HOME", t.TempDir())
	config.Load()

	// Nothing saved yet: built-in base.
	defaults := loadDefaults()
	if defaults.PackageManager != "npm" {
		t.Errorf("base package manager = %q, want npm", defaults.PackageManager)
	}
	if defaults.Prisma || defaults.UserService {
		t.Error("feature defaults should start off")
	}

	// Saved preferences from an earlier run override the base.
	yes := true
	if err := userdata.SavePreferences(&userdata.Preferences{PackageManager: "yarn", Prisma: &yes}); err != nil {
		t.Fatalf("saving preferences: %v", err)
	}
	defaults = loadDefaults()
	if defaults.PackageManager != "yarn" {
		t.Errorf("package manager = %q, want yarn from preferences", defaults.PackageManager)
	}
	if !defaults.Prisma {
		t.Error("prisma default should come from preferences")
	}
	if defaults.UserService {
		t.Error("user service default should stay off")
	}

	// Explicit config wins over preferences.
	if err := config.Set(config.KeyDefaultPackageManager, "pnpm"); err != nil {
		t.Fatalf("setting config: %v", err)
	}
	defaults = loadDefaults()
	if defaults.PackageManager != "pnpm" {
		t.Errorf("package manager = %q, want pnpm from config", defaults.PackageManager)
	}
}

func TestSavePreferencesRecordsAnswers(t *testing.T) {
	t.Setenv("STENCIL_HOME", t.TempDir())

	cfg := &orchestrator.ResolvedConfig{PackageManager: "pnpm", Prisma: true, UserService: false}
	savePreferences(cfg)

	prefs, err := userdata.LoadPreferences()
	if err != nil {
		t.Fatalf("loading preferences: %v", err)
	}
	if prefs.PackageManager != "pnpm" {
		t.Errorf("package manager = %q, want pnpm", prefs.PackageManager)
	}
	if prefs.Prisma == nil || !*prefs.Prisma {
		t.Error("prisma answer not recorded")
	}
	if prefs.UserService == nil || *prefs.UserService {
		t.Error("user service answer should be recorded as false")
	}
}
