// Package manifest parses and validates collection manifests: the
// collection.yaml file that describes a generator collection (its name,
// version, and the tools a generated project needs). Validation runs
// against an embedded JSON Schema so authors of external collections get
// field-level errors instead of a bare parse failure.
package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// CollectionManifest describes one generator collection.
type CollectionManifest struct {
	Name        string            `yaml:"name" json:"name"`
	Version     string            `yaml:"version" json:"version"`
	Description string            `yaml:"description" json:"description"`
	Tags        []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Requires    []ToolRequirement `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// ToolRequirement names an external tool a generated project depends on,
// optionally with a minimum version the doctor command checks with semver.
type ToolRequirement struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// Parse reads a collection manifest from a file.
func Parse(path string) (*CollectionManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseBytes parses a collection manifest from raw YAML.
func ParseBytes(data []byte) (*CollectionManifest, error) {
	var m CollectionManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest missing required 'name' field")
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
