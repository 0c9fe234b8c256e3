// Package gitrunner wraps the version-control actions performed after a
// project is generated: repository initialization and the ignore-file write.
// It shells out to the git binary; nothing here understands repository
// internals beyond that.
package gitrunner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes git commands in a target project directory.
type Runner struct {
	// Stdout can be set for testing; defaults to os.Stdout.
	Stdout io.Writer
}

// Init runs `git init` in targetDir. With silent set, git's output is
// discarded; otherwise it is written to the configured writer. The command's
// combined output is embedded in the returned error on failure.
func (r *Runner) Init(ctx context.Context, targetDir string, silent bool) error {
	if err := ensureGit(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "git", "init")
	cmd.Dir = targetDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git init in %s: %w\n%s", targetDir, err, strings.TrimSpace(string(output)))
	}

	if !silent {
		out := r.Stdout
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprint(out, string(output))
	}
	return nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is not installed or not on PATH: %w", err)
	}
	return nil
}
