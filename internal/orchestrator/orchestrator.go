package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/techsavvyash/stencil-cli/internal/generator"
)

// Generator renders a project collection into the target directory.
type Generator interface {
	Execute(ctx context.Context, collection, targetDir string, options map[string]string) (*generator.Result, error)
}

// Installer installs project dependencies with the selected package manager.
type Installer interface {
	Install(ctx context.Context, targetDir, manager string, withPrisma, withUserService bool) error
}

// Addon provisions one optional feature inside a generated project.
type Addon interface {
	Create(ctx context.Context, targetDir, manager string) error
}

// VersionControl initializes a repository and writes its ignore file.
type VersionControl interface {
	Init(ctx context.Context, dir string, silent bool) error
	WriteIgnoreFile(dir string) error
}

// Deps wires the collaborators of one new-project run. In and Out carry the
// interactive session; ErrOut receives warnings.
type Deps struct {
	In       io.Reader
	Out      io.Writer
	ErrOut   io.Writer
	Defaults Defaults

	Generator   Generator
	Installer   Installer
	Prisma      Addon
	UserService Addon
	Fixtures    Addon
	Git         VersionControl
}

// Result holds the outcome of a completed run.
type Result struct {
	Config   *ResolvedConfig
	Files    []string
	Warnings []string
}

// Run resolves the configuration, dispatches the generator exactly once and
// walks the post-generation pipeline. Resolution and generation failures
// abort with an error; pipeline stage failures are recorded as warnings and
// never abort, so a completed Run with a nil error always maps to a success
// exit status.
func Run(ctx context.Context, deps Deps, pos Positionals, flags Flags) (*Result, error) {
	cfg, err := Resolve(pos, flags, deps.Defaults, deps.In, deps.Out)
	if err != nil {
		return nil, err
	}

	genResult, err := deps.Generator.Execute(ctx, cfg.Collection, cfg.TargetDir, cfg.GeneratorOptions())
	if err != nil {
		return nil, fmt.Errorf("generating project: %w", err)
	}

	result := &Result{
		Config: cfg,
		Files:  genResult.Files,
	}

	fmt.Fprintf(deps.Out, "Created %s at %s/\n", cfg.Name, cfg.TargetDir)
	for _, f := range genResult.Files {
		fmt.Fprintf(deps.Out, "  %s\n", f)
	}
	for _, w := range genResult.Warnings {
		warn(deps, result, "%s", w)
	}

	runPipeline(ctx, deps, cfg, result)

	return result, nil
}

// warn records a warning on the result and reports it without stopping the run.
func warn(deps Deps, result *Result, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	result.Warnings = append(result.Warnings, msg)
	fmt.Fprintf(deps.ErrOut, "Warning: %s\n", msg)
}
