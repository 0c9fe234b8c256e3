package orchestrator

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/techsavvyash/stencil-cli/internal/generator"
	"github.com/techsavvyash/stencil-cli/internal/packagemanager"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Resolve fills every pending option by asking questions on in/out, in a
// fixed order: project name, data layer toggle, user service toggle, package
// manager. Options already supplied through flags or positionals are
// validated and never asked again. The returned configuration is complete;
// downstream stages read it without further questions.
func Resolve(pos Positionals, flags Flags, defaults Defaults, in io.Reader, out io.Writer) (*ResolvedConfig, error) {
	// Reject unknown identifiers before the first question or side effect.
	if flags.Collection != "" {
		if err := generator.Validate(flags.Collection); err != nil {
			return nil, err
		}
	}
	if flags.PackageManager != "" {
		if err := packagemanager.Validate(flags.PackageManager); err != nil {
			return nil, err
		}
	}

	reader := bufio.NewReader(in)

	name := pos.Name
	if name == "" {
		answer, err := askString(reader, out, "Project name: ")
		if err != nil {
			return nil, err
		}
		name = answer
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	prisma := flags.Prisma.Value
	if !flags.Prisma.Set {
		answer, err := askYesNo(reader, out, "Add Prisma database support?", defaults.Prisma)
		if err != nil {
			return nil, err
		}
		prisma = answer
	}

	userService := flags.UserService.Value
	if !flags.UserService.Set {
		answer, err := askYesNo(reader, out, "Add the user service starter?", defaults.UserService)
		if err != nil {
			return nil, err
		}
		userService = answer
	}

	manager := flags.PackageManager
	if manager == "" {
		defaultManager := defaults.PackageManager
		if defaultManager == "" {
			defaultManager = packagemanager.ManagerNpm
		}
		answer, err := selectFromList(reader, out, "Select package manager:", packagemanager.Known(), defaultManager)
		if err != nil {
			return nil, err
		}
		manager = answer
	}

	collection := flags.Collection
	if collection == "" {
		collection = generator.CollectionStandard
	}

	targetDir := flags.Directory
	if targetDir == "" {
		targetDir = filepath.Join(".", name)
	}

	return &ResolvedConfig{
		Name:           name,
		TargetDir:      targetDir,
		Collection:     collection,
		PackageManager: manager,
		Prisma:         prisma,
		UserService:    userService,
		// The dev fixtures stage is always provisioned. Its toggle stays
		// pinned on and is never asked.
		Fixtures:    true,
		DryRun:      flags.DryRun,
		SkipInstall: flags.SkipInstall,
		SkipGit:     flags.SkipGit,
	}, nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

// askString prompts for a single line of input and returns it trimmed.
func askString(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// askYesNo prompts for a yes/no answer; pressing enter picks def.
func askYesNo(reader *bufio.Reader, w io.Writer, prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(w, "%s [%s]: ", prompt, hint)

	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: enter y or n", strings.TrimSpace(line))
	}
}

// selectFromList presents a numbered list and returns the selected item.
// Pressing enter picks the default item.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string, def string) (string, error) {
	defIdx := 0
	for i, item := range items {
		if item == def {
			defIdx = i
		}
	}

	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d] (default %d): ", len(items), defIdx+1)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return items[defIdx], nil
	}

	num, err := strconv.Atoi(trimmed)
	if err != nil || num < 1 || num > len(items) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", trimmed, len(items))
	}

	return items[num-1], nil
}
