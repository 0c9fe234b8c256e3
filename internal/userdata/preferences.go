package userdata

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preferences holds the operator's remembered scaffolding answers, stored in
// preferences.yaml. The resolver uses them as prompt defaults on later runs.
// Pointer fields distinguish "never answered" from an explicit no.
type Preferences struct {
	PackageManager string `yaml:"package_manager,omitempty"`
	Prisma         *bool  `yaml:"prisma,omitempty"`
	UserService    *bool  `yaml:"user_service,omitempty"`

	// Extras holds arbitrary user-defined fields.
	Extras map[string]interface{} `yaml:",inline"`
}

// LoadPreferences reads and parses preferences.yaml. A missing file is not an
// error; it returns empty preferences.
func LoadPreferences() (*Preferences, error) {
	path, err := PreferencesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &p, nil
}

// SavePreferences writes preferences.yaml, creating the home directory first.
func SavePreferences(p *Preferences) error {
	if _, err := EnsureHomeRoot(); err != nil {
		return err
	}
	path, err := PreferencesPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermNormal); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}
