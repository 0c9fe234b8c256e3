package orchestrator

import "strconv"

// Positionals holds the positional arguments of a new-project invocation.
type Positionals struct {
	Name string
}

// Toggle is a tri-state boolean flag. Unset toggles leave Set false so the
// resolver can ask for the value instead of assuming one.
type Toggle struct {
	Set   bool
	Value bool
}

// ToggleValue returns a Toggle carrying an explicit value.
func ToggleValue(v bool) Toggle {
	return Toggle{Set: true, Value: v}
}

// Flags holds every option a new-project invocation accepts. String fields
// read as pending while empty; Toggle fields read as pending while unset.
type Flags struct {
	Directory      string
	Collection     string
	PackageManager string
	Prisma         Toggle
	UserService    Toggle
	DryRun         bool
	SkipInstall    bool
	SkipGit        bool
}

// Defaults supplies the fallback answers offered during interactive
// resolution, typically loaded from saved preferences.
type Defaults struct {
	PackageManager string
	Prisma         bool
	UserService    bool
}

// ResolvedConfig is the complete configuration of one run, produced once by
// Resolve. Every field downstream code consults has a defined value; nothing
// after resolution asks questions or mutates it.
type ResolvedConfig struct {
	Name           string
	TargetDir      string
	Collection     string
	PackageManager string
	Prisma         bool
	UserService    bool
	Fixtures       bool
	DryRun         bool
	SkipInstall    bool
	SkipGit        bool
}

// GeneratorOptions renders the configuration as the option map handed to the
// generator. SkipInstall stays out: it gates the dependency installation
// stage only and is no concern of the generator.
func (c *ResolvedConfig) GeneratorOptions() map[string]string {
	return map[string]string{
		"name":           c.Name,
		"directory":      c.TargetDir,
		"collection":     c.Collection,
		"packageManager": c.PackageManager,
		"prisma":         strconv.FormatBool(c.Prisma),
		"userService":    strconv.FormatBool(c.UserService),
		"fixtures":       strconv.FormatBool(c.Fixtures),
		"dryRun":         strconv.FormatBool(c.DryRun),
		"skipGit":        strconv.FormatBool(c.SkipGit),
	}
}
