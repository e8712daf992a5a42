package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/browserkit/pkg/vec2"
)

// boundKind selects which components a MinVector constrains. It is fixed at
// construction so validation dispatches on a single tag instead of
// re-deriving the branch from the configuration on every call.
type boundKind uint8

const (
	boundNone boundKind = iota // no minimums; shape check with absence forbidden
	boundX
	boundY
	boundXY
)

// MinVector validates that each present component of a two-component value is
// greater than or equal to its configured minimum, with absence either
// allowed everywhere or forbidden everywhere. It is an immutable policy
// object: build it once per field declaration and reuse it for every check;
// Validate is pure and safe for concurrent use.
type MinVector struct {
	minX      vec2.Component
	minY      vec2.Component
	allowNone bool
	kind      boundKind
	expected  string
}

// NewMinVector builds the constraint. minX and minY are the per-component
// minimums, nil meaning unconstrained. A constraint with no minimums that
// also allows absence could never fail, so that combination is rejected with
// ErrVacuousConstraint.
func NewMinVector(minX, minY *int, allowNone bool) (*MinVector, error) {
	if minX == nil && minY == nil && allowNone {
		return nil, fmt.Errorf(
			"%w: at least one component minimum must be set, or absence must be forbidden (minX=nil, minY=nil, allowNone=true)",
			ErrVacuousConstraint,
		)
	}
	m := &MinVector{allowNone: allowNone}
	if minX != nil {
		m.minX = vec2.Int(*minX)
	}
	if minY != nil {
		m.minY = vec2.Int(*minY)
	}
	switch {
	case minX == nil && minY == nil:
		m.kind = boundNone
	case minY == nil:
		m.kind = boundX
	case minX == nil:
		m.kind = boundY
	default:
		m.kind = boundXY
	}
	m.expected = m.expectedPhrase()
	return m, nil
}

// MustMinVector is NewMinVector panicking on configuration errors, for
// package-level constraint declarations.
func MustMinVector(minX, minY *int, allowNone bool) *MinVector {
	m, err := NewMinVector(minX, minY, allowNone)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks the candidate value against the constraint. The shape check
// runs first: the value must carry exactly two components, each an integer
// or, when absence is allowed, absent. Then the components selected by the
// constraint are checked against their minimums; absent components pass
// trivially since the shape check already enforced the absence policy.
func (m *MinVector) Validate(field string, value any) error {
	x, y, err := m.components(field, value)
	if err != nil {
		return err
	}
	switch m.kind {
	case boundX:
		return m.checkMin(field, value, x, m.minX.Value)
	case boundY:
		return m.checkMin(field, value, y, m.minY.Value)
	case boundXY:
		if err := m.checkMin(field, value, x, m.minX.Value); err != nil {
			return err
		}
		return m.checkMin(field, value, y, m.minY.Value)
	}
	return nil
}

// Rule adapts the constraint into the Rule/Apply engine.
func (m *MinVector) Rule(field string, value any) Rule {
	err := m.Validate(field, value)
	rule := Rule{Check: func() bool { return err == nil }}
	if err != nil {
		var verr ValidationError
		errors.As(err, &verr)
		rule.Error = verr
	}
	return rule
}

func (m *MinVector) String() string {
	suffix := "and not none"
	if m.allowNone {
		suffix = "or none"
	}
	return fmt.Sprintf("<vector constraint: at least (%s, %s) %s>", m.minX, m.minY, suffix)
}

// components runs the shape check, extracting exactly two components from the
// candidate and enforcing the absence policy on each.
func (m *MinVector) components(field string, value any) (vec2.Component, vec2.Component, error) {
	first, second, ok := elements(value)
	if !ok {
		return vec2.None(), vec2.None(), m.typeMismatch(field, value)
	}
	x, ok := strictComponent(first)
	if !ok || (!x.Valid && !m.allowNone) {
		return vec2.None(), vec2.None(), m.typeMismatch(field, value)
	}
	y, ok := strictComponent(second)
	if !ok || (!y.Valid && !m.allowNone) {
		return vec2.None(), vec2.None(), m.typeMismatch(field, value)
	}
	return x, y, nil
}

// checkMin is the per-component bound check; absent components were already
// vetted by the shape check and pass here.
func (m *MinVector) checkMin(field string, value any, c vec2.Component, min int) error {
	if !c.Valid || c.Value >= min {
		return nil
	}
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be a vector with %s; got %v", m.expected, value),
		Kind:    ErrOutOfRange,
	}
}

func (m *MinVector) typeMismatch(field string, value any) error {
	policy := " (not none)"
	if m.allowNone {
		policy = "/none"
	}
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be a pair of 2 ints%s, preferably vec2.Vector; got %#v", policy, value),
		Kind:    ErrTypeMismatch,
	}
}

// expectedPhrase renders the human-readable expectation once, at construction
// time, combining the set bounds and the absence policy.
func (m *MinVector) expectedPhrase() string {
	orNone := ""
	if m.allowNone {
		orNone = " or being none"
	}
	switch m.kind {
	case boundNone:
		return "neither X nor Y being none"
	case boundX:
		return fmt.Sprintf("X >= %d%s", m.minX.Value, orNone)
	case boundY:
		return fmt.Sprintf("Y >= %d%s", m.minY.Value, orNone)
	}
	bounds := fmt.Sprintf("(X >= %d, Y >= %d)", m.minX.Value, m.minY.Value)
	if m.allowNone {
		return bounds + " or either being none"
	}
	return bounds + " and neither being none"
}

// elements extracts exactly two raw components from the accepted candidate
// shapes: a vec2.Vector (by value or pointer), or a two-element slice/array.
func elements(value any) (any, any, bool) {
	switch v := value.(type) {
	case vec2.Vector:
		return v.X, v.Y, true
	case *vec2.Vector:
		if v == nil {
			return nil, nil, false
		}
		return v.X, v.Y, true
	case nil:
		return nil, nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, nil, false
	}
	if rv.Len() != 2 {
		return nil, nil, false
	}
	return rv.Index(0).Interface(), rv.Index(1).Interface(), true
}

// strictComponent accepts only integers and explicit absence — unlike
// vec2.Convert, digit strings and floats are rejected here.
func strictComponent(elem any) (vec2.Component, bool) {
	switch e := elem.(type) {
	case nil:
		return vec2.None(), true
	case vec2.Component:
		return e, true
	case *int:
		if e == nil {
			return vec2.None(), true
		}
		return vec2.Int(*e), true
	}
	rv := reflect.ValueOf(elem)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return vec2.Int(int(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return vec2.Int(int(rv.Uint())), true
	}
	return vec2.None(), false
}
