package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsUpdateAvailable reports whether latest is strictly newer than current.
func IsUpdateAvailable(current, latest string) (bool, error) {
	cur, lat, err := parsePair(current, latest)
	if err != nil {
		return false, err
	}
	return cur.LessThan(lat), nil
}

// Meets reports whether version satisfies the given minimum. The doctor
// command uses it to check installed tools against collection requirements.
func Meets(version, minimum string) (bool, error) {
	v, min, err := parsePair(version, minimum)
	if err != nil {
		return false, err
	}
	return !v.LessThan(min), nil
}

func parsePair(a, b string) (*semver.Version, *semver.Version, error) {
	av, err := parseLoose(a)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseLoose(b)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av, bv, nil
}

// parseLoose tolerates the "v" prefix release tags usually carry.
func parseLoose(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
