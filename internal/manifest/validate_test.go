package manifest

import (
	"strings"
	"testing"
)

func TestValidate_ValidManifest(t *testing.T) {
	result, err := Validate([]byte(validManifest))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidate_InvalidManifests(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			"missing version",
			"name: standard\ndescription: no version here\n",
		},
		{
			"bad name pattern",
			"name: Has Spaces\nversion: \"1.0.0\"\ndescription: bad name\n",
		},
		{
			"bad version format",
			"name: standard\nversion: latest\ndescription: bad version\n",
		},
		{
			"requirement without name",
			"name: standard\nversion: \"1.0.0\"\ndescription: ok\nrequires:\n  - min_version: 1.0.0\n",
		},
		{
			"unknown top-level field",
			"name: standard\nversion: \"1.0.0\"\ndescription: ok\nauthor: someone\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, got valid", tt.name)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s", tt.name)
			}
		})
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := Validate([]byte("name: Has Spaces\nversion: \"1.0.0\"\ndescription: bad name\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/name" && issue.Keyword == "pattern" {
			found = true
			if issue.Message == "" {
				t.Error("issue message is empty")
			}
		}
	}
	if !found {
		t.Errorf("no issue for /name pattern; got %+v", result.Issues)
	}
}

func TestValidate_IssuesAreDeduplicated(t *testing.T) {
	result, err := Validate([]byte("name: standard\ndescription: no version\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	seen := make(map[string]int)
	for _, issue := range result.Issues {
		seen[issue.Path+"|"+issue.Keyword+"|"+issue.Message]++
	}
	for key, count := range seen {
		if count > 1 {
			t.Errorf("issue %q appears %d times", key, count)
		}
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	_, err := Validate([]byte("requires: [unclosed"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "parsing YAML") {
		t.Errorf("unexpected error: %v", err)
	}
}
