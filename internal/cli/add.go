package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/techsavvyash/stencil-cli/internal/addons"
	"github.com/techsavvyash/stencil-cli/internal/orchestrator"
	"github.com/techsavvyash/stencil-cli/internal/packagemanager"
)

var (
	addDirectory string
	addManager   string
)

func init() {
	addCmd.Flags().StringVar(&addDirectory, "directory", "", "Project directory (default: current directory)")
	addCmd.Flags().StringVarP(&addManager, "package-manager", "p", "npm", "Package manager used by the project")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <feature>",
	Short: "Add a feature to an existing service",
	Long: `Add an optional feature to an existing service: install its packages and
write its source files. Files that already exist are left untouched.

Supported features: prisma, user-service, fixtures.

Examples:
  stencil add prisma
  stencil add user-service --package-manager yarn
  stencil add fixtures`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feature := args[0]

		if err := packagemanager.Validate(addManager); err != nil {
			return err
		}

		targetDir := addDirectory
		if targetDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
			targetDir = wd
		}

		addon, pkgs, err := resolveFeature(feature)
		if err != nil {
			return err
		}

		manager := packagemanager.Dispatch(addManager)
		if err := manager.Add(cmd.Context(), targetDir, pkgs...); err != nil {
			return fmt.Errorf("installing %s packages: %w", feature, err)
		}
		if err := addon.Create(cmd.Context(), targetDir, addManager); err != nil {
			return fmt.Errorf("wiring %s: %w", feature, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", feature, targetDir)
		return nil
	},
}

// resolveFeature maps a feature name to its addon and the packages it needs.
// Fixtures write repo tooling only, so their package list is empty.
func resolveFeature(name string) (orchestrator.Addon, []string, error) {
	switch name {
	case "prisma":
		return addons.Prisma{}, packagemanager.PrismaPackages(), nil
	case "user-service":
		return addons.UserService{}, packagemanager.UserServicePackages(), nil
	case "fixtures":
		return addons.Fixtures{}, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown feature %q: supported features are prisma, user-service, fixtures", name)
	}
}
