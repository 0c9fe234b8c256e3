package updater

import "net/http"

// Checker looks up published releases and compares them against the version
// of the running binary.
type Checker struct {
	version string
	client  *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient replaces the HTTP client used for release lookups.
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) {
		ch.client = c
	}
}

// New returns a Checker for the given build version.
func New(version string, opts ...Option) *Checker {
	ch := &Checker{
		version: version,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Version returns the build version the Checker compares against.
func (ch *Checker) Version() string {
	return ch.version
}
