package updater

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// checkResultFile is the JSON file holding the last release lookup, kept
// under the config directory so startup never waits on the network.
const checkResultFile = "version-check.json"

// maxResultAge is how long a cached lookup stays fresh before a background
// refresh is scheduled.
const maxResultAge = 24 * time.Hour

// checkResult is the cached outcome of one release lookup.
type checkResult struct {
	Current   string    `json:"current_version"`
	Latest    string    `json:"latest_version"`
	CheckedAt time.Time `json:"checked_at"`
	Newer     bool      `json:"update_available"`
}

// readResult loads the cached lookup from dir. A missing file means no
// lookup has happened yet and reads as (nil, nil).
func readResult(dir string) (*checkResult, error) {
	data, err := os.ReadFile(filepath.Join(dir, checkResultFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version check cache: %w", err)
	}

	var res checkResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parsing version check cache: %w", err)
	}
	return &res, nil
}

// save writes the lookup result into dir, creating the directory if needed.
func (r *checkResult) save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding version check cache: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, checkResultFile), data, 0o644); err != nil {
		return fmt.Errorf("writing version check cache: %w", err)
	}
	return nil
}

// stale reports whether the result is older than maxAge. A nil result is
// always stale.
func (r *checkResult) stale(maxAge time.Duration) bool {
	return r == nil || time.Since(r.CheckedAt) > maxAge
}
