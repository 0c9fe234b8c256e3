package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/techsavvyash/stencil-cli/internal/branding"
)

// NotifyIfOutdated prints an upgrade hint to w when the cached release
// lookup says a newer version exists, then schedules a background refresh if
// the cache has gone stale. It never blocks startup on the network and never
// surfaces an error.
func (ch *Checker) NotifyIfOutdated(w io.Writer, stateDir string) {
	res, err := readResult(stateDir)
	if err != nil {
		return
	}

	if res != nil && res.Newer {
		fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", res.Current, res.Latest)
		fmt.Fprintf(w, "    Get it at https://github.com/%s/releases\n\n", branding.GitHubRepo())
	}

	if res.stale(maxResultAge) {
		go ch.refresh(stateDir)
	}
}

// refresh performs one release lookup and caches the outcome. It runs in a
// background goroutine, so failures are dropped rather than reported.
func (ch *Checker) refresh(stateDir string) {
	release, err := ch.LatestRelease(context.Background())
	if err != nil {
		return
	}
	newer, err := IsUpdateAvailable(ch.version, release.Tag)
	if err != nil {
		return
	}

	res := &checkResult{
		Current:   ch.version,
		Latest:    release.Tag,
		CheckedAt: time.Now(),
		Newer:     newer,
	}
	_ = res.save(stateDir)
}
