// Package validator provides a small declarative rule engine plus the
// constraint types used by browserkit's configuration fields, most notably
// the minimum-bound constraint for two-component window vectors.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with field-level
// error metadata. Rules are evaluated with the Apply helper which aggregates
// any failures into a ValidationErrors slice that satisfies the error
// interface, making it convenient to bubble up multiple field-specific
// problems in a single error return.
//
// # Core building blocks
//
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – a single failure carrying field, message, and kind
//   - ValidationErrors  – slice type that implements the error interface
//   - MinVector         – per-field policy object for vector minimum bounds
//
// Every failure wraps one of the package sentinel errors, so callers can
// branch on failure class:
//
//	err := validator.Apply(
//	    sizeBound.Rule("window_size", cfg.WindowSize),
//	    validator.MinNum("navigation_timeout", cfg.NavigationTimeout, time.Second),
//	)
//	if errors.Is(err, validator.ErrOutOfRange) { ... }
//
// # Vector constraints
//
// MinVector enforces "each present component >= its minimum, or the component
// is absent" over anything shaped like a pair of optional ints. The branch
// over which components are bounded is chosen once at construction, and a
// constraint that could never fail (no bounds, absence allowed) is rejected
// up front with ErrVacuousConstraint. See vector_rules.go.
//
// # Concurrency
//
// There is no hidden global state; rules and constraints are immutable after
// construction, so the package is completely stateless and goroutine-safe.
package validator
