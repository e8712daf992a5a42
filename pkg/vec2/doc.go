// Package vec2 provides a strict two-component optional-integer vector used
// for browser window geometry (size, position), together with a permissive
// value converter and a tolerant string parser for environment variables.
//
// The package is deliberately narrow: exactly two optional int components,
// nothing more. It is not a general numeric-parsing library.
//
// # Core types
//
//   - Component – an optional int (value + presence flag), comparable
//   - Vector    – an immutable, value-equal pair of Components
//
// # Conversion and parsing
//
// Convert turns loosely-typed values (ints, two-element slices, nil) into a
// Vector, reporting success through a second return value instead of raising
// errors; callers keep their original value when conversion fails.
//
// Parse turns a raw string into a Vector through three tiers of decreasing
// strictness: an exact space-delimited form ("1280 720"), an exact
// single-separator form ("1280x720"), and a best-effort digit scan that
// tolerates arbitrary surrounding noise. The first tier that succeeds wins.
//
// FromEnv and FromEnvOrZero are the entry points for configuration code: they
// accept a raw env value (string, nil, or anything Convert handles) and
// resolve it to a Vector, treating unparseable or fully-absent results as
// "no value provided" rather than as errors.
//
// # Concurrency
//
// All values are immutable after construction and all functions are pure, so
// the package is safe for concurrent use without synchronization.
package vec2
