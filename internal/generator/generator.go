package generator

import (
	"fmt"
	"strings"
)

// Supported collection identifiers.
const (
	CollectionStandard = "standard"
	CollectionMinimal  = "minimal"
)

// Collection defines the interface for rendering one project template set.
type Collection interface {
	// Name returns the collection identifier (e.g., "standard").
	Name() string
	// Generate renders the collection's templates into outputDir.
	Generate(data *TemplateData, outputDir string) (*Result, error)
}

// Result holds the outcome of a project generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Known returns the collection identifiers that ship with the CLI, in menu order.
func Known() []string {
	return []string{CollectionStandard, CollectionMinimal}
}

// Dispatch returns the Collection implementation for the given identifier.
// Returns an error-producing collection for unknown values.
func Dispatch(name string) Collection {
	switch name {
	case CollectionStandard, CollectionMinimal:
		return &embeddedCollection{name: name}
	default:
		return &unknownCollection{name: name}
	}
}

// Validate returns the configuration error for an unknown collection
// identifier, or nil when the identifier is supported.
func Validate(name string) error {
	for _, known := range Known() {
		if name == known {
			return nil
		}
	}
	return unknownErr(name)
}

func unknownErr(name string) error {
	return fmt.Errorf("unknown collection %q: available collections are %s", name, strings.Join(Known(), ", "))
}

// unknownCollection is returned when the collection identifier is not recognized.
type unknownCollection struct {
	name string
}

func (u *unknownCollection) Name() string { return u.name }

func (u *unknownCollection) Generate(_ *TemplateData, _ string) (*Result, error) {
	return nil, unknownErr(u.name)
}
