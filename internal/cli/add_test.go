package cli

import (
	"strings"
	"testing"

	"github.com/techsavvyash/stencil-cli/internal/addons"
)

func TestResolveFeaturePrisma(t *testing.T) {
	addon, pkgs, err := resolveFeature("prisma")
	if err != nil {
		t.Fatalf("resolveFeature(prisma): %v", err)
	}
	if _, ok := addon.(addons.Prisma); !ok {
		t.Errorf("addon = %T, want addons.Prisma", addon)
	}
	if got := strings.Join(pkgs, ","); got != "prisma,@prisma/client" {
		t.Errorf("packages = %s, want prisma,@prisma/client", got)
	}
}

func TestResolveFeatureUserService(t *testing.T) {
	addon, pkgs, err := resolveFeature("user-service")
	if err != nil {
		t.Fatalf("resolveFeature(user-service): %v", err)
	}
	if _, ok := addon.(addons.UserService); !ok {
		t.Errorf("addon = %T, want addons.UserService", addon)
	}
	if got := strings.Join(pkgs, ","); got != "@techsavvyash/user-service" {
		t.Errorf("packages = %s, want @techsavvyash/user-service", got)
	}
}

func TestResolveFeatureFixtures(t *testing.T) {
	addon, pkgs, err := resolveFeature("fixtures")
	if err != nil {
		t.Fatalf("resolveFeature(fixtures): %v", err)
	}
	if _, ok := addon.(addons.Fixtures); !ok {
		t.Errorf("addon = %T, want addons.Fixtures", addon)
	}
	if len(pkgs) != 0 {
		t.Errorf("packages = %v, want none for fixtures", pkgs)
	}
}

func TestResolveFeatureUnknown(t *testing.T) {
	_, _, err := resolveFeature("graphql")
	if err == nil {
		t.Fatal("expected error for unknown feature")
	}
	if !strings.Contains(err.Error(), "graphql") || !strings.Contains(err.Error(), "prisma, user-service, fixtures") {
		t.Errorf("error %q should name the feature and the supported list", err)
	}
}
