// Completion: 100% - Environment-driven configuration complete
package main

import "github.com/xyproto/env/v2"

// Config holds the knobs this demo reads from the environment instead of
// flags, the same way a long-running host embedding dynasm would want to
// tune checks and section budgets without a recompile.
type Config struct {
	Checks     bool // DYNASM_CHECKS: run-time range/undef validation
	MaxSection int  // DYNASM_MAXSECTION: number of output sections to reserve
	Verbose    bool // DYNASM_VERBOSE: print a size summary to stderr after assembling
}

// LoadConfig reads Config from the environment, falling back to sane
// defaults for a single-section, fully-checked run.
func LoadConfig() Config {
	checks := true
	if env.Has("DYNASM_CHECKS") {
		checks = env.Bool("DYNASM_CHECKS")
	}
	verbose := false
	if env.Has("DYNASM_VERBOSE") {
		verbose = env.Bool("DYNASM_VERBOSE")
	}
	return Config{
		Checks:     checks,
		MaxSection: env.Int("DYNASM_MAXSECTION", 1),
		Verbose:    verbose,
	}
}
