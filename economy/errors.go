/*
errors.go - Centralized error types for the simulation engines

PURPOSE:
  All error types in one place for consistency and discoverability.
  Engine packages wrap or return these; the API layer maps them to
  HTTP status codes.

ERROR CATEGORIES:
  1. Configuration errors - invalid parameter ranges, rejected before
     any simulation step runs. A failed run produces no result; the
     caller keeps whatever it displayed before.
  2. Arithmetic degenerate cases - zero wage, zero disposable income -
     are NOT errors. They are handled locally with epsilon/zero guards
     inside the engines.
  3. Internal invariant violations - a household referencing a person
     that does not exist - indicate a construction bug and panic.

There is no retry concept: every computation is deterministic or seeded,
so a failure on first attempt fails identically on retry.

USAGE:
  if err := cfg.Validate(); err != nil {
      if economy.IsConfigError(err) {
          // 400, not 500
      }
  }

SEE ALSO:
  - params.go: Validate() producers
  - api/handlers.go: status-code mapping
*/
package economy

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidConfig is the root of all configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRunNotFound is returned by the run archive when a saved run
	// does not exist.
	ErrRunNotFound = errors.New("run not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConfigError reports which field failed validation and why.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConfigError returns true if the error is due to invalid caller input.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsNotFound returns true if the error indicates a missing saved run.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRunNotFound)
}
