package vec2

import (
	"reflect"
	"strconv"
	"strings"
)

// Convert attempts to turn a loosely-typed value into a Vector:
//
//   - a Vector (or non-nil *Vector) is returned as is;
//   - nil broadcasts to the all-absent vector;
//   - a single value of any integer kind broadcasts to both components;
//   - a two-element slice or array is converted element-wise, where each
//     element may be nil (absent), a Component, any integer or float kind
//     (floats are truncated), a *int, or a string of digits.
//
// On any failure the second return value is false and the caller should keep
// its original value; Convert never panics. The strict shape rules live in
// the validator package, not here — this converter is advisory and must be
// paired with an explicit check downstream.
func Convert(value any) (Vector, bool) {
	switch v := value.(type) {
	case Vector:
		return v, true
	case *Vector:
		if v == nil {
			return Vector{}, true
		}
		return *v, true
	case Component:
		return Vector{X: v, Y: v}, true
	case nil:
		return Vector{}, true
	}

	if n, ok := intValue(value); ok {
		return Broadcast(n), true
	}

	first, second, ok := twoElements(value)
	if !ok {
		return Vector{}, false
	}
	x, ok := coerceComponent(first)
	if !ok {
		return Vector{}, false
	}
	y, ok := coerceComponent(second)
	if !ok {
		return Vector{}, false
	}
	return Vector{X: x, Y: y}, true
}

// intValue reports whether value is of an integer kind and returns it as int.
// Strings and floats do not broadcast; they are only coerced as elements of a
// two-element sequence.
func intValue(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(maxInt) {
			return 0, false
		}
		return int(u), true
	}
	return 0, false
}

const maxInt = int(^uint(0) >> 1)

// twoElements extracts exactly two elements from a slice or array.
func twoElements(value any) (any, any, bool) {
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

// coerceComponent converts a single sequence element to a Component.
func coerceComponent(elem any) (Component, bool) {
	switch e := elem.(type) {
	case nil:
		return None(), true
	case Component:
		return e, true
	case *int:
		if e == nil {
			return None(), true
		}
		return Int(*e), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(e))
		if err != nil {
			return None(), false
		}
		return Int(n), true
	}

	if n, ok := intValue(elem); ok {
		return Int(n), true
	}

	rv := reflect.ValueOf(elem)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return Int(int(rv.Float())), true
	}
	return None(), false
}
