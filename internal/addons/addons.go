// Package addons wires optional modules into an already generated project:
// the Prisma data layer, the user-service module, and the repo fixtures
// (hooks, devcontainer, CI workflow). Each installer writes its files into
// the project directory and leaves anything the operator already created
// untouched. Package installation is the package manager's concern, not
// ours; installers only receive the manager name to reference it in the
// files they write.
package addons

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeProjectFiles writes each path→content pair under root, creating parent
// directories as needed. Existing files are skipped so a re-run never
// clobbers operator edits. Returns the relative paths actually written.
func writeProjectFiles(root string, files map[string]string, mode os.FileMode) ([]string, error) {
	var written []string
	for rel, content := range files {
		path := filepath.Join(root, rel)

		if _, err := os.Stat(path); err == nil {
			continue // keep the operator's version
		} else if !os.IsNotExist(err) {
			return written, fmt.Errorf("checking %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), mode); err != nil {
			return written, fmt.Errorf("writing %s: %w", rel, err)
		}
		written = append(written, rel)
	}
	return written, nil
}

// appendEnvLine appends line to the project's .env file unless an equivalent
// line is already present. The file is created when missing.
func appendEnvLine(root, line string) error {
	path := filepath.Join(root, ".env")

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .env: %w", err)
	}

	// Check if the line already exists.
	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) == line {
			return nil // already present
		}
	}

	// Append the line. Ensure there's a newline before our addition.
	suffix := line + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		suffix = "\n" + suffix
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening .env for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(suffix); err != nil {
		return fmt.Errorf("writing to .env: %w", err)
	}
	return nil
}
