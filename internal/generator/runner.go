package generator

import "context"

// Runner renders projects through the collection dispatcher. It is the
// generator implementation handed to the orchestrator for "stencil new".
type Runner struct{}

// Execute renders the named collection into targetDir using the resolved
// option map. The context is unused; rendering is local file IO.
func (Runner) Execute(_ context.Context, collection, targetDir string, options map[string]string) (*Result, error) {
	return Dispatch(collection).Generate(DataFromOptions(options), targetDir)
}
