// Package updater checks GitHub Releases for newer stencil versions. A
// daily-cached check powers the startup banner; it also backs semver
// comparisons for the doctor command's tool requirements.
package updater
