// Package cliconfig loads the small TOML file that drives the chronofmt command line tool:
// which pattern to use by default, how strictly to resolve parsed fields, and whether
// console logging runs in debug mode. None of this is needed by the chrono library itself -
// callers embedding the package configure formatters directly through the Builder.
package cliconfig

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml"
)

// Config is the decoded contents of a chronofmt TOML file.
type Config struct {
	// Pattern is the default layout used when -pattern is not given on the command line.
	Pattern string `toml:"pattern"`

	// ResolverStyle is one of "strict", "smart" or "lenient"; see resolverStyle in cmd/chronofmt.
	ResolverStyle string `toml:"resolver_style"`

	// Debug enables debug-level console logging.
	Debug bool `toml:"debug"`
}

// Default returns the configuration chronofmt falls back to when no -config flag is given.
func Default() *Config {
	return &Config{
		Pattern:       "uuuu-MM-dd'T'HH:mm:ss",
		ResolverStyle: "smart",
	}
}

// Load reads and strictly decodes the TOML file at path: unknown keys are rejected rather
// than silently ignored, matching how misconfiguration is caught elsewhere in this module's
// ambient tooling.
func Load(path string) (*Config, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	cfg := Default()
	if err := toml.NewDecoder(fd).Strict(true).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}
