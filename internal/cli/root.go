package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/techsavvyash/stencil-cli/internal/branding"
	"github.com/techsavvyash/stencil-cli/internal/config"
	"github.com/techsavvyash/stencil-cli/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds NestJS services from built-in collections and wires
up the surrounding tooling: dependency installation, Prisma data layer, user
service starter, git and dev fixtures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Keep version output clean for scripting.
		if cmd.Name() == "version" {
			return
		}

		config.Load()
		if disabled, ok := config.GetBool(config.KeySkipUpdateCheck); ok && disabled {
			return
		}

		// Non-blocking banner from the cached release lookup.
		updater.New(buildVersion).NotifyIfOutdated(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
