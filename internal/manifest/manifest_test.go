package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const validManifest = `name: standard
version: "1.2.0"
description: Full service project with NestJS-style layout
tags: [service, typescript]
requires:
  - name: node
    min_version: 18.0.0
  - name: git
`

func TestParseBytes(t *testing.T) {
	m, err := ParseBytes([]byte(validManifest))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	if m.Name != "standard" {
		t.Errorf("Name = %q, want standard", m.Name)
	}
	if m.Version != "1.2.0" {
		t.Errorf("Version = %q, want 1.2.0", m.Version)
	}
	if len(m.Requires) != 2 {
		t.Fatalf("len(Requires) = %d, want 2", len(m.Requires))
	}
	if m.Requires[0].Name != "node" || m.Requires[0].MinVersion != "18.0.0" {
		t.Errorf("Requires[0] = %+v", m.Requires[0])
	}
	if m.Requires[1].MinVersion != "" {
		t.Errorf("Requires[1].MinVersion = %q, want empty", m.Requires[1].MinVersion)
	}
}

func TestParseBytes_MissingName(t *testing.T) {
	_, err := ParseBytes([]byte("version: \"1.0.0\"\ndescription: nameless\n"))
	if err == nil {
		t.Fatal("expected error for manifest without name")
	}
}

func TestParseBytes_InvalidYAML(t *testing.T) {
	_, err := ParseBytes([]byte("name: [unclosed"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestParse_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collection.yaml")
	if err := os.WriteFile(path, []byte(validManifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Description == "" {
		t.Error("Description is empty")
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
