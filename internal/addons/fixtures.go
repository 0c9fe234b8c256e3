package addons

import (
	"context"
	"fmt"
	"path/filepath"
)

// Fixtures wires repository tooling into a generated project: a pre-commit
// hook, a devcontainer, and a CI workflow. The chosen package manager is
// baked into the commands these files run.
type Fixtures struct{}

const preCommitHook = `#!/usr/bin/env sh
. "$(dirname -- "$0")/_/husky.sh"

%s run lint
%s run test
`

const devcontainer = `{
  "name": "%s",
  "image": "mcr.microsoft.com/devcontainers/typescript-node:20",
  "postCreateCommand": "%s install",
  "customizations": {
    "vscode": {
      "extensions": ["dbaeumer.vscode-eslint", "esbenp.prettier-vscode"]
    }
  }
}
`

const ciWorkflow = `name: ci

on:
  push:
    branches: [main]
  pull_request:

jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-node@v4
        with:
          node-version: 20
      - run: %s install
      - run: %s run lint
      - run: %s run test
`

// Create writes the fixture files into targetDir, skipping any the operator
// already created. The hook script is written executable.
func (Fixtures) Create(_ context.Context, targetDir, manager string) error {
	files := map[string]string{
		".devcontainer/devcontainer.json": fmt.Sprintf(devcontainer, filepath.Base(targetDir), manager),
		".github/workflows/ci.yaml":       fmt.Sprintf(ciWorkflow, manager, manager, manager),
	}
	if _, err := writeProjectFiles(targetDir, files, 0o644); err != nil {
		return err
	}

	hook := map[string]string{
		".husky/pre-commit": fmt.Sprintf(preCommitHook, manager, manager),
	}
	_, err := writeProjectFiles(targetDir, hook, 0o755)
	return err
}
