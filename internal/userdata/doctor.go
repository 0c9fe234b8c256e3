package userdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.yaml.in/yaml/v3"
)

// CheckHome validates the stencil home directory layout and permissions.
// When fix is true, it attempts to repair issues.
func CheckHome(w io.Writer, fix bool) error {
	root, err := HomeRoot()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Home directory check:")

	// Check root exists.
	if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", root)
		if fix {
			if _, mkErr := EnsureHomeRoot(); mkErr != nil {
				return fmt.Errorf("auto-fix home: %w", mkErr)
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", root)
		} else {
			fmt.Fprintln(w, "         It is created on the first scaffold or config write")
		}
		return nil
	}

	checkDirPerm(w, root, DirPermNormal, fix)

	// Check the optional state files parse.
	checkYAMLFile(w, filepath.Join(root, PreferencesFile), fix)
	checkYAMLFile(w, filepath.Join(root, ConfigFile), fix)

	return nil
}

func checkDirPerm(w io.Writer, path string, expectedPerm os.FileMode, fix bool) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != expectedPerm {
		fmt.Fprintf(w, "  [WARN] %s has permissions %o (expected %o)\n", path, actualPerm, expectedPerm)
		if fix {
			if chErr := chmod(path, expectedPerm); chErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", path, chErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Fixed permissions on %s to %o\n", path, expectedPerm)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s (permissions %o)\n", path, actualPerm)
}

// checkYAMLFile reports whether an optional state file parses as YAML, and
// brings its permissions back to FilePermNormal when fix is set.
func checkYAMLFile(w io.Writer, path string, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s not written yet\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] Cannot read %s: %v\n", path, err)
		return
	}
	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		fmt.Fprintf(w, "  [WARN] %s is not valid YAML: %v\n", path, err)
		return
	}

	perm := info.Mode().Perm()
	if perm != FilePermNormal {
		fmt.Fprintf(w, "  [WARN] %s has permissions %o (expected %o)\n", path, perm, FilePermNormal)
		if fix {
			if chErr := chmod(path, FilePermNormal); chErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", path, chErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Fixed permissions on %s to %o\n", path, FilePermNormal)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
}

// chmod repairs permission bits. Windows has no Unix permission model, so
// fixes there are a no-op rather than a failure.
func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
