// Package langcfg loads the toolkit's tunable limits from a TOML file, for
// callers that want to override the defaults used by package parsing
// without recompiling.
package langcfg

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the toolkit's tunable limits.
type Config struct {
	// MaxParseDepth bounds how deeply LazyParser may recurse before parsing
	// fails with a RecursionLimitExceededError, guarding against infinite
	// recursion in cyclic grammars. See parsing.NewTokenReader.
	MaxParseDepth int `toml:"max_parse_depth"`

	// DiagnosticSoftCap is a suggested ceiling on emitted diagnostics past
	// which a caller may want to stop a compilation early; the toolkit
	// itself never enforces it.
	DiagnosticSoftCap int `toml:"diagnostic_soft_cap"`
}

// Default returns the toolkit's built-in limits, used whenever no config
// file is loaded.
func Default() Config {
	return Config{
		MaxParseDepth:     1000,
		DiagnosticSoftCap: 200,
	}
}

// Load reads a Config from a TOML file at path, starting from Default and
// overriding whichever fields the file sets.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("langcfg: %w", err)
	}
	return cfg, nil
}
