// Package orchestrator coordinates the "stencil new" flow: it resolves every
// pending option interactively, dispatches the project generator exactly once
// and then walks a fixed pipeline of post-generation stages (dependency
// install, feature wiring, git init, closing message). Generation failures
// are fatal; pipeline stage failures degrade to warnings so a broken stage
// never takes down the run.
package orchestrator
