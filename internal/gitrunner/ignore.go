package gitrunner

import (
	"fmt"
	"os"
	"path/filepath"
)

// IgnoreFileName is the ignore file written after repository initialization.
const IgnoreFileName = ".gitignore"

// ignoreBody covers the artifacts a generated service produces. Operators are
// expected to extend it; that is why an existing file is never touched.
const ignoreBody = `# compiled output
/dist
/build
*.tsbuildinfo

# dependencies
/node_modules

# logs
logs
*.log
npm-debug.log*
yarn-debug.log*
yarn-error.log*
pnpm-debug.log*

# environment
.env
.env.local

# coverage
/coverage
/.nyc_output

# OS
.DS_Store

# IDE
/.idea
/.vscode
`

// WriteIgnoreFile writes the standard ignore file into targetDir. If the file
// already exists the call is a silent no-op, preserving operator edits.
func (r *Runner) WriteIgnoreFile(targetDir string) error {
	path := filepath.Join(targetDir, IgnoreFileName)

	if _, err := os.Stat(path); err == nil {
		return nil // already present
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(ignoreBody), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
