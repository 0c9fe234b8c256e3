package updater

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestNotifyIfOutdated_PrintsFromCache(t *testing.T) {
	dir := t.TempDir()
	res := &checkResult{
		Current:   "1.2.0",
		Latest:    "1.4.0",
		CheckedAt: time.Now(),
		Newer:     true,
	}
	if err := res.save(dir); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out bytes.Buffer
	New("1.2.0").NotifyIfOutdated(&out, dir)

	banner := out.String()
	if !strings.Contains(banner, "Update available: 1.2.0 -> 1.4.0") {
		t.Errorf("missing update line:\n%s", banner)
	}
	if !strings.Contains(banner, "releases") {
		t.Errorf("banner should point at the releases page:\n%s", banner)
	}
}

func TestNotifyIfOutdated_QuietWhenCurrent(t *testing.T) {
	dir := t.TempDir()
	res := &checkResult{
		Current:   "1.2.0",
		Latest:    "1.2.0",
		CheckedAt: time.Now(),
		Newer:     false,
	}
	if err := res.save(dir); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out bytes.Buffer
	New("1.2.0").NotifyIfOutdated(&out, dir)

	if out.Len() != 0 {
		t.Errorf("no banner expected on the latest version, got:\n%s", out.String())
	}
}

func TestRefresh_WritesCache(t *testing.T) {
	dir := t.TempDir()
	client := releaseClient(t, http.StatusOK, `{"tag_name": "v2.0.0"}`)

	New("1.0.0", WithHTTPClient(client)).refresh(dir)

	res, err := readResult(dir)
	if err != nil {
		t.Fatalf("readResult: %v", err)
	}
	if res == nil {
		t.Fatal("refresh should have cached the lookup")
	}
	if res.Latest != "v2.0.0" {
		t.Errorf("Latest = %q, want %q", res.Latest, "v2.0.0")
	}
	if !res.Newer {
		t.Error("Newer should be set for a newer release")
	}
}
