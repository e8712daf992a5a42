package vec2

import "fmt"

// Component is an optional integer vector component. The zero value is the
// absent component, distinct from a present zero.
type Component struct {
	Value int
	Valid bool
}

// Int returns a present component holding v.
func Int(v int) Component {
	return Component{Value: v, Valid: true}
}

// None returns the absent component.
func None() Component {
	return Component{}
}

// String renders the component for error messages and logs.
func (c Component) String() string {
	if !c.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", c.Value)
}

// Vector is an immutable pair of optional integer components. Two vectors
// with equal components compare equal; the zero value has both components
// absent.
type Vector struct {
	X Component
	Y Component
}

// New constructs a vector from two components.
func New(x, y Component) Vector {
	return Vector{X: x, Y: y}
}

// Of constructs a vector with both components present.
func Of(x, y int) Vector {
	return Vector{X: Int(x), Y: Int(y)}
}

// Broadcast constructs a vector with both components set to v.
func Broadcast(v int) Vector {
	return Of(v, v)
}

// IsZero reports whether both components are absent.
func (v Vector) IsZero() bool {
	return !v.X.Valid && !v.Y.Valid
}

func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}
