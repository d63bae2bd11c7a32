package config

import "context"

// Loader is the interface for a format-specific configuration file reader.
type Loader interface {
	// Load reads the file at path and returns the options it sets, keyed by
	// option name. Options absent from the file are absent from the map.
	Load(ctx context.Context, path string) (map[string]string, error)
}
