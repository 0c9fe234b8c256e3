package cli

import (
	"github.com/spf13/cobra"

	"github.com/techsavvyash/stencil-cli/internal/addons"
	"github.com/techsavvyash/stencil-cli/internal/config"
	"github.com/techsavvyash/stencil-cli/internal/generator"
	"github.com/techsavvyash/stencil-cli/internal/gitrunner"
	"github.com/techsavvyash/stencil-cli/internal/orchestrator"
	"github.com/techsavvyash/stencil-cli/internal/packagemanager"
	"github.com/techsavvyash/stencil-cli/internal/userdata"
)

var (
	newDirectory      string
	newCollection     string
	newPackageManager string
	newDryRun         bool
	newSkipInstall    bool
	newSkipGit        bool
)

func init() {
	newCmd.Flags().StringVar(&newDirectory, "directory", "", "Target directory (default: ./<name>)")
	newCmd.Flags().StringVar(&newCollection, "collection", "", "Generator collection: standard or minimal")
	newCmd.Flags().StringVarP(&newPackageManager, "package-manager", "p", "", "Package manager: npm, yarn or pnpm")
	newCmd.Flags().Bool("prisma", false, "Add Prisma database support")
	newCmd.Flags().Bool("user-service", false, "Add the user service starter")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Resolve and generate without installing, wiring features or touching git")
	newCmd.Flags().BoolVar(&newSkipInstall, "skip-install", false, "Skip dependency installation (and the features that need it)")
	newCmd.Flags().BoolVar(&newSkipGit, "skip-git", false, "Skip git repository initialization")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new NestJS service from a collection",
	Long: `Create a new NestJS service, install its dependencies and wire up the
optional features (Prisma data layer, user service starter, dev fixtures).

Any option not supplied as a flag or argument is asked interactively, and the
answers are saved as defaults for the next run.

Examples:
  stencil new order-api
  stencil new order-api --prisma --package-manager pnpm
  stencil new order-api --dry-run
  stencil new order-api --skip-install --skip-git`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) > 0 {
			name = args[0]
		}

		flags := orchestrator.Flags{
			Directory:      newDirectory,
			Collection:     newCollection,
			PackageManager: newPackageManager,
			DryRun:         newDryRun,
			SkipInstall:    newSkipInstall,
			SkipGit:        newSkipGit,
		}
		// The feature toggles are tri-state: only flags the user actually
		// passed pre-answer their questions.
		if cmd.Flags().Changed("prisma") {
			v, _ := cmd.Flags().GetBool("prisma")
			flags.Prisma = orchestrator.ToggleValue(v)
		}
		if cmd.Flags().Changed("user-service") {
			v, _ := cmd.Flags().GetBool("user-service")
			flags.UserService = orchestrator.ToggleValue(v)
		}

		deps := orchestrator.Deps{
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
			ErrOut:      cmd.ErrOrStderr(),
			Defaults:    loadDefaults(),
			Generator:   generator.Runner{},
			Installer:   packagemanager.Installer{},
			Prisma:      addons.Prisma{},
			UserService: addons.UserService{},
			Fixtures:    addons.Fixtures{},
			Git:         &gitrunner.Runner{},
		}

		result, err := orchestrator.Run(cmd.Context(), deps, orchestrator.Positionals{Name: name}, flags)
		if err != nil {
			return err
		}

		if !result.Config.DryRun {
			savePreferences(result.Config)
		}
		return nil
	},
}

// loadDefaults builds the fallback answers for interactive resolution: saved
// preferences from the last run, overridden by explicit defaults.* config.
func loadDefaults() orchestrator.Defaults {
	defaults := orchestrator.Defaults{PackageManager: packagemanager.ManagerNpm}

	if prefs, err := userdata.LoadPreferences(); err == nil {
		if prefs.PackageManager != "" {
			defaults.PackageManager = prefs.PackageManager
		}
		if prefs.Prisma != nil {
			defaults.Prisma = *prefs.Prisma
		}
		if prefs.UserService != nil {
			defaults.UserService = *prefs.UserService
		}
	}

	if v := config.Get(config.KeyDefaultPackageManager); v != "" {
		defaults.PackageManager = v
	}
	if v, ok := config.GetBool(config.KeyDefaultPrisma); ok {
		defaults.Prisma = v
	}
	if v, ok := config.GetBool(config.KeyDefaultUserService); ok {
		defaults.UserService = v
	}

	return defaults
}

// savePreferences records the resolved answers as defaults for the next run.
func savePreferences(cfg *orchestrator.ResolvedConfig) {
	prefs, err := userdata.LoadPreferences()
	if err != nil {
		prefs = &userdata.Preferences{}
	}

	prisma := cfg.Prisma
	userService := cfg.UserService
	prefs.PackageManager = cfg.PackageManager
	prefs.Prisma = &prisma
	prefs.UserService = &userService

	// Preferences are a convenience; losing them is not worth failing a
	// run that already succeeded.
	_ = userdata.SavePreferences(prefs)
}
