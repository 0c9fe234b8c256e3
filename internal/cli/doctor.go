package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/techsavvyash/stencil-cli/internal/generator"
	"github.com/techsavvyash/stencil-cli/internal/packagemanager"
	"github.com/techsavvyash/stencil-cli/internal/updater"
	"github.com/techsavvyash/stencil-cli/internal/userdata"
)

var (
	doctorCollection string
	doctorFix        bool
)

func init() {
	doctorCmd.Flags().StringVar(&doctorCollection, "collection", generator.CollectionStandard, "Collection whose tool requirements to check")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair home directory issues")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required tools are installed",
	Long:  `Run diagnostic checks on the home directory and the tools a generated project depends on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := generator.Validate(doctorCollection); err != nil {
			return err
		}

		if err := userdata.CheckHome(os.Stdout, doctorFix); err != nil {
			return err
		}

		fmt.Println("Package managers:")
		for _, name := range packagemanager.Known() {
			checkBinary(name)
		}

		m, err := generator.Manifest(doctorCollection)
		if err != nil {
			return fmt.Errorf("reading manifest for %s: %w", doctorCollection, err)
		}
		if len(m.Requires) == 0 {
			return nil
		}

		fmt.Printf("Required tools (%s):\n", doctorCollection)
		for _, req := range m.Requires {
			checkTool(req.Name, req.MinVersion)
		}
		return nil
	},
}

func checkBinary(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}
	fmt.Printf("  [ OK ] %s found at %s\n", name, path)
}

func checkTool(name, minVersion string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}
	if minVersion == "" {
		fmt.Printf("  [ OK ] %s found at %s\n", name, path)
		return
	}

	version, err := toolVersion(name)
	if err != nil {
		fmt.Printf("  [WARN] %s found but version unknown: %v\n", name, err)
		return
	}
	ok, err := updater.Meets(version, minVersion)
	if err != nil {
		fmt.Printf("  [WARN] %s version %s not comparable to %s: %v\n", name, version, minVersion, err)
		return
	}
	if !ok {
		fmt.Printf("  [FAIL] %s %s is older than required %s\n", name, version, minVersion)
		return
	}
	fmt.Printf("  [ OK ] %s %s (>= %s)\n", name, version, minVersion)
}

func toolVersion(name string) (string, error) {
	out, err := exec.Command(name, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", name, err)
	}
	return versionFromOutput(name, string(out))
}

// versionFromOutput returns the first token of a --version output that
// parses as a semantic version. Tools print versions in different shapes
// ("git version 2.39.2", "v18.17.0"), so every whitespace field is tried.
func versionFromOutput(name, out string) (string, error) {
	for _, field := range strings.Fields(out) {
		if v, err := semver.NewVersion(field); err == nil {
			return v.String(), nil
		}
	}
	return "", fmt.Errorf("no version number in %s --version output", name)
}
