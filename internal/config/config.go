package config

import "os"

const DefaultDataPath = "~/.local/share/roadmapio/roadmapio.db"

// DataPath returns the snapshot database path from the ROADMAPIO_DATA env
// var, falling back to DefaultDataPath.
func DataPath() string {
	if env := os.Getenv("ROADMAPIO_DATA"); env != "" {
		return env
	}
	return DefaultDataPath
}

// GeneratorEndpoint returns the HTTP generation endpoint from the
// ROADMAPIO_GENERATOR_URL env var. Empty means no remote generator; the
// claude CLI generator is used when available.
func GeneratorEndpoint() string {
	return os.Getenv("ROADMAPIO_GENERATOR_URL")
}
