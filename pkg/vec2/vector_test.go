package vec2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/browserkit/pkg/vec2"
)

func TestComponent(t *testing.T) {
	t.Parallel()

	t.Run("zero value is absent", func(t *testing.T) {
		var c vec2.Component
		assert.False(t, c.Valid)
		assert.Equal(t, "none", c.String())
	})

	t.Run("present zero differs from absent", func(t *testing.T) {
		assert.NotEqual(t, vec2.Int(0), vec2.None())
		assert.Equal(t, "0", vec2.Int(0).String())
	})
}

func TestVector(t *testing.T) {
	t.Parallel()

	t.Run("value equality", func(t *testing.T) {
		assert.Equal(t, vec2.Of(1, 2), vec2.New(vec2.Int(1), vec2.Int(2)))
		assert.NotEqual(t, vec2.Of(1, 2), vec2.Of(2, 1))
	})

	t.Run("zero value is all-absent", func(t *testing.T) {
		var v vec2.Vector
		assert.True(t, v.IsZero())
		assert.False(t, vec2.Of(0, 0).IsZero())
	})

	t.Run("broadcast sets both components", func(t *testing.T) {
		assert.Equal(t, vec2.Of(4, 4), vec2.Broadcast(4))
	})

	t.Run("string rendering", func(t *testing.T) {
		assert.Equal(t, "(1280, none)", vec2.New(vec2.Int(1280), vec2.None()).String())
	})
}
