package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/techsavvyash/stencil-cli/internal/generator"
	"github.com/techsavvyash/stencil-cli/internal/manifest"
)

var collectionsJSON bool

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List available template collections",
	Long:  `List the template collections bundled with this binary.`,
	RunE:  runCollections,
}

var collectionsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a collection manifest file",
	Long:  `Validate a collection.yaml file against the manifest schema.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollectionManifestCheck(args[0])
	},
}

func init() {
	collectionsCmd.Flags().BoolVar(&collectionsJSON, "json", false, "Output in JSON format")
	collectionsCmd.AddCommand(collectionsValidateCmd)
	rootCmd.AddCommand(collectionsCmd)
}

// collectionEntry represents a bundled collection for display.
type collectionEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Tags        string `json:"tags,omitempty"`
}

func runCollections(cmd *cobra.Command, args []string) error {
	var entries []collectionEntry
	for _, name := range generator.Known() {
		m, err := generator.Manifest(name)
		if err != nil {
			return fmt.Errorf("reading manifest for %s: %w", name, err)
		}
		entries = append(entries, collectionEntry{
			Name:        m.Name,
			Version:     m.Version,
			Description: m.Description,
			Tags:        strings.Join(m.Tags, ","),
		})
	}

	if collectionsJSON {
		return printCollectionsJSON(cmd, entries)
	}
	return printCollectionsTable(cmd, entries)
}

func printCollectionsTable(cmd *cobra.Command, entries []collectionEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Version, e.Description)
	}
	return w.Flush()
}

func printCollectionsJSON(cmd *cobra.Command, entries []collectionEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runCollectionManifestCheck(path string) error {
	fmt.Printf("Manifest validation: %s\n", path)

	// Validate against JSON Schema.
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		// Parse to get name and version for the success message.
		m, err := manifest.Parse(path)
		if err != nil {
			fmt.Printf("  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Printf("  [ OK ] Valid collection manifest: %s (v%s)\n", m.Name, m.Version)
		return nil
	}

	// Report validation issues.
	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
