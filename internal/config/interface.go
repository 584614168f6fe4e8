package config

import "context"

// Loader is the interface for a format-specific override rule loader.
type Loader interface {
	// Load reads override declarations from the given paths and translates
	// them into the format-agnostic rule store.
	Load(ctx context.Context, paths ...string) (*RuleStore, error)
}
