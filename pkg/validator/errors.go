package validator

import "errors"

// Sentinel errors used as ValidationError kinds and construction failures.
var (
	// ErrValidationFailed is the generic kind when nothing more specific applies.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is the kind for missing required values.
	ErrFieldRequired = errors.New("field is required")

	// ErrTypeMismatch is the kind for values of the wrong shape: wrong arity,
	// a non-integer component, or an absent component where absence is forbidden.
	ErrTypeMismatch = errors.New("value has wrong type or shape")

	// ErrOutOfRange is the kind for present components below their minimum.
	ErrOutOfRange = errors.New("value out of range")

	// ErrVacuousConstraint is returned at construction time when a vector
	// constraint has no minimums and allows absence, so it could never fail.
	ErrVacuousConstraint = errors.New("constraint can never fail")
)
