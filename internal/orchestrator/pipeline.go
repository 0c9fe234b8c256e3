package orchestrator

import (
	"context"
	"fmt"
	"io"
)

// runPipeline walks the fixed post-generation stages in order. Each stage
// evaluates its own gate once before running; a failed stage is degraded to
// a warning and the next stage's gate is evaluated regardless.
func runPipeline(ctx context.Context, deps Deps, cfg *ResolvedConfig, result *Result) {
	// Stage 1: dependency installation.
	switch {
	case cfg.SkipInstall:
		fmt.Fprintln(deps.Out, "Skipping dependency installation")
	case cfg.DryRun:
		fmt.Fprintln(deps.Out, "Dry run: skipping dependency installation")
	default:
		if err := deps.Installer.Install(ctx, cfg.TargetDir, cfg.PackageManager, cfg.Prisma, cfg.UserService); err != nil {
			warn(deps, result, "installing dependencies: %v", err)
		}
	}

	// Stages 2 and 3 are nested inside stage 1's gate, not its outcome:
	// with --skip-install the feature files would reference packages that
	// were never installed.
	installGate := !cfg.SkipInstall

	// Stage 2: Prisma data layer.
	if installGate && cfg.Prisma {
		if cfg.DryRun {
			fmt.Fprintln(deps.Out, "Dry run: skipping Prisma setup")
		} else if err := deps.Prisma.Create(ctx, cfg.TargetDir, cfg.PackageManager); err != nil {
			warn(deps, result, "setting up Prisma: %v", err)
		}
	}

	// Stage 3: user service starter.
	if installGate && cfg.UserService {
		if cfg.DryRun {
			fmt.Fprintln(deps.Out, "Dry run: skipping user service setup")
		} else if err := deps.UserService.Create(ctx, cfg.TargetDir, cfg.PackageManager); err != nil {
			warn(deps, result, "setting up user service: %v", err)
		}
	}

	// Stage 4: git repository. Stage 5 writes the ignore file even when
	// init fails, so a half-initialized repository still ignores build
	// output.
	if !cfg.DryRun && !cfg.SkipGit {
		if err := deps.Git.Init(ctx, cfg.TargetDir, true); err != nil {
			warn(deps, result, "initializing git repository: %v", err)
		}

		// Stage 5: ignore file. WriteIgnoreFile is a no-op when the file
		// already exists.
		if err := deps.Git.WriteIgnoreFile(cfg.TargetDir); err != nil {
			warn(deps, result, "writing ignore file: %v", err)
		}
	}

	// Stage 6: dev fixtures (devcontainer, CI workflow, git hooks). The
	// fixtures toggle is pinned on during resolution.
	if !cfg.DryRun && cfg.Fixtures {
		if err := deps.Fixtures.Create(ctx, cfg.TargetDir, cfg.PackageManager); err != nil {
			warn(deps, result, "provisioning dev fixtures: %v", err)
		}
	}

	// Stage 7: closing message.
	if !cfg.DryRun {
		printNextSteps(deps.Out, cfg)
	}
}

func printNextSteps(w io.Writer, cfg *ResolvedConfig) {
	runPrefix := cfg.PackageManager + " run"
	if cfg.PackageManager == "yarn" {
		runPrefix = "yarn"
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  cd %s\n", cfg.TargetDir)
	if cfg.SkipInstall {
		fmt.Fprintf(w, "  %s install\n", cfg.PackageManager)
	}
	fmt.Fprintf(w, "  %s start:dev\n", runPrefix)
}
