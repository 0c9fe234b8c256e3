package updater

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadResult_MissingFile(t *testing.T) {
	res, err := readResult(t.TempDir())
	if err != nil {
		t.Fatalf("readResult: %v", err)
	}
	if res != nil {
		t.Errorf("expected nil result before the first lookup, got %+v", res)
	}
}

func TestResult_SaveAndRead(t *testing.T) {
	// The state dir does not exist yet; save must create it.
	dir := filepath.Join(t.TempDir(), "state")

	saved := &checkResult{
		Current:   "1.1.0",
		Latest:    "1.2.0",
		CheckedAt: time.Now().Truncate(time.Second),
		Newer:     true,
	}
	if err := saved.save(dir); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := readResult(dir)
	if err != nil {
		t.Fatalf("readResult: %v", err)
	}
	if loaded.Current != "1.1.0" || loaded.Latest != "1.2.0" {
		t.Errorf("versions = %q/%q, want 1.1.0/1.2.0", loaded.Current, loaded.Latest)
	}
	if !loaded.Newer {
		t.Error("Newer flag lost in the round trip")
	}
}

func TestReadResult_Corrupted(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, checkResultFile), []byte("not json{{{"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readResult(dir); err == nil {
		t.Error("expected error for a corrupted cache file")
	}
}

func TestResult_Stale(t *testing.T) {
	var nilResult *checkResult
	if !nilResult.stale(maxResultAge) {
		t.Error("nil result must read as stale")
	}

	fresh := &checkResult{CheckedAt: time.Now()}
	if fresh.stale(maxResultAge) {
		t.Error("just-checked result must not be stale")
	}

	old := &checkResult{CheckedAt: time.Now().Add(-48 * time.Hour)}
	if !old.stale(maxResultAge) {
		t.Error("two-day-old result must be stale")
	}
}
