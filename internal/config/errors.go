package config

import "fmt"

// ValidationError reports a configuration value that violates its rule. The
// message reads as "<VAR> <rule>" so the entry point can print it verbatim
// behind an "[ERROR] " prefix.
type ValidationError struct {
	Var   string // environment variable name
	Rule  string // human-readable rule text
	Value int    // offending value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Var, e.Rule)
}
