package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}

// Model holds the settings that can come from a settings file. A nil pointer
// or empty value means "not set".
type Model struct {
	PontoonEndpoint string
	GitHubEndpoint  string
	Owner           string
	// Path is a pointer because the empty string, the repository root, is a
	// meaningful value.
	Path      *string
	Output    string
	Ignore    []string
	Timeout   string
	UserAgent string
}
