package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCollectionsTable(t *testing.T) {
	var buf bytes.Buffer
	collectionsCmd.SetOut(&buf)
	defer collectionsCmd.SetOut(nil)

	if err := runCollections(collectionsCmd, nil); err != nil {
		t.Fatalf("runCollections: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "VERSION", "standard", "minimal"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestRunCollectionsJSON(t *testing.T) {
	collectionsJSON = true
	defer func() { collectionsJSON = false }()

	var buf bytes.Buffer
	collectionsCmd.SetOut(&buf)
	defer collectionsCmd.SetOut(nil)

	if err := runCollections(collectionsCmd, nil); err != nil {
		t.Fatalf("runCollections: %v", err)
	}

	var entries []collectionEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshaling listing: %v\n%s", err, buf.String())
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Name != "standard" || entries[1].Name != "minimal" {
		t.Errorf("entries = %q, %q; want standard, minimal", entries[0].Name, entries[1].Name)
	}
	for _, e := range entries {
		if e.Version == "" || e.Description == "" {
			t.Errorf("entry %s missing version or description", e.Name)
		}
	}
}

func TestRunCollectionManifestCheck(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "collection.yaml")
	if err := os.WriteFile(valid, []byte("name: custom\nversion: 1.0.0\ndescription: A custom collection\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runCollectionManifestCheck(valid); err != nil {
		t.Errorf("valid manifest reported invalid: %v", err)
	}

	invalid := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(invalid, []byte("name: custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := runCollectionManifestCheck(invalid)
	if err == nil {
		t.Fatal("manifest without version should be invalid")
	}
	if !strings.Contains(err.Error(), "validation issue") {
		t.Errorf("error %q should mention validation issues", err)
	}
}
