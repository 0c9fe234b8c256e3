//go:build integration

package integration_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/techsavvyash/stencil-cli/internal/addons"
	"github.com/techsavvyash/stencil-cli/internal/generator"
	"github.com/techsavvyash/stencil-cli/internal/gitrunner"
	"github.com/techsavvyash/stencil-cli/internal/orchestrator"
	"github.com/techsavvyash/stencil-cli/internal/packagemanager"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // STENCIL_HOME; preferences and config land here
	WorkDir string // parent directory for generated projects
}

// setupTestEnv creates isolated temp directories and points STENCIL_HOME at
// them so runs cannot touch the operator's real home.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("STENCIL_HOME", env.HomeDir)
	return env
}

// realDeps builds an orchestrator dependency set backed by the production
// collaborators, with prompts read from in and output captured in the buffers.
func realDeps(in io.Reader, out, errOut *bytes.Buffer) orchestrator.Deps {
	return orchestrator.Deps{
		In:          in,
		Out:         out,
		ErrOut:      errOut,
		Defaults:    orchestrator.Defaults{PackageManager: packagemanager.ManagerNpm},
		Generator:   generator.Runner{},
		Installer:   packagemanager.Installer{},
		Prisma:      addons.Prisma{},
		UserService: addons.UserService{},
		Fixtures:    addons.Fixtures{},
		Git:         &gitrunner.Runner{},
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

func project(env *testEnv, name string) string {
	return filepath.Join(env.WorkDir, name)
}
