package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browserkit/pkg/validator"
	"github.com/dmitrymomot/browserkit/pkg/vec2"
)

func intPtr(v int) *int {
	return &v
}

func TestNewMinVector(t *testing.T) {
	t.Parallel()

	t.Run("vacuous constraint is a configuration error", func(t *testing.T) {
		_, err := validator.NewMinVector(nil, nil, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrVacuousConstraint)
	})

	t.Run("no bounds with absence forbidden is allowed", func(t *testing.T) {
		m, err := validator.NewMinVector(nil, nil, false)
		require.NoError(t, err)
		require.NotNil(t, m)
	})

	t.Run("must variant panics on configuration error", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.MustMinVector(nil, nil, true)
		})
	})
}

func TestMinVectorValidate(t *testing.T) {
	t.Parallel()

	t.Run("x-only bound with absence allowed", func(t *testing.T) {
		m := validator.MustMinVector(intPtr(5), nil, true)

		assert.NoError(t, m.Validate("size", vec2.New(vec2.Int(5), vec2.None())))
		assert.NoError(t, m.Validate("size", vec2.Vector{}))
		assert.NoError(t, m.Validate("size", vec2.Of(5, -100)), "y is unconstrained")

		err := m.Validate("size", vec2.Of(4, 100))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
		assert.Contains(t, err.Error(), "X >= 5 or being none")

		err = m.Validate("size", []any{5, "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrTypeMismatch)
	})

	t.Run("y-only bound", func(t *testing.T) {
		m := validator.MustMinVector(nil, intPtr(10), true)

		assert.NoError(t, m.Validate("size", vec2.Of(-5, 10)), "x is unconstrained")
		err := m.Validate("size", vec2.Of(0, 9))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
		assert.Contains(t, err.Error(), "Y >= 10 or being none")
	})

	t.Run("both bounds checked independently", func(t *testing.T) {
		m := validator.MustMinVector(intPtr(1), intPtr(1), true)

		assert.NoError(t, m.Validate("size", vec2.Of(1280, 720)))
		assert.NoError(t, m.Validate("size", vec2.New(vec2.None(), vec2.Int(720))))

		err := m.Validate("size", vec2.Of(1280, 0))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
		assert.Contains(t, err.Error(), "(X >= 1, Y >= 1) or either being none")
	})

	t.Run("forbidden absence is a type mismatch even above bounds", func(t *testing.T) {
		m := validator.MustMinVector(intPtr(1), intPtr(1), false)

		err := m.Validate("size", vec2.New(vec2.Int(5), vec2.None()))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrTypeMismatch)
		assert.NotErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("no bounds validates shape only", func(t *testing.T) {
		m := validator.MustMinVector(nil, nil, false)

		assert.NoError(t, m.Validate("size", vec2.Of(-100, -100)))
		err := m.Validate("size", vec2.New(vec2.Int(1), vec2.None()))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrTypeMismatch)
	})

	t.Run("accepted candidate shapes", func(t *testing.T) {
		m := validator.MustMinVector(intPtr(1), intPtr(1), true)

		assert.NoError(t, m.Validate("size", [2]int{4, 4}))
		assert.NoError(t, m.Validate("size", []int{1280, 720}))
		assert.NoError(t, m.Validate("size", []any{5, nil}))
		assert.NoError(t, m.Validate("size", [2]*int{intPtr(2), nil}))
		v := vec2.Of(3, 3)
		assert.NoError(t, m.Validate("size", &v))
	})

	t.Run("rejected candidate shapes", func(t *testing.T) {
		m := validator.MustMinVector(intPtr(1), intPtr(1), true)

		for name, candidate := range map[string]any{
			"nil":             nil,
			"scalar":          5,
			"string":          "1280x720",
			"wrong arity":     []int{1, 2, 3},
			"float element":   []any{1.5, 2},
			"string element":  []any{5, "x"},
			"nil vec pointer": (*vec2.Vector)(nil),
		} {
			err := m.Validate("size", candidate)
			require.Error(t, err, name)
			assert.ErrorIs(t, err, validator.ErrTypeMismatch, name)
		}
	})

	t.Run("error carries field name and offending value", func(t *testing.T) {
		m := validator.MustMinVector(intPtr(5), nil, true)
		err := m.Validate("window_size", vec2.Of(4, 4))
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "window_size", verr.Field)
		assert.Contains(t, verr.Message, "(4, 4)")
	})
}

func TestMinVectorRule(t *testing.T) {
	t.Parallel()

	t.Run("composes with Apply", func(t *testing.T) {
		size := validator.MustMinVector(intPtr(1), intPtr(1), true)
		pos := validator.MustMinVector(intPtr(0), intPtr(0), true)

		err := validator.Apply(
			size.Rule("window_size", vec2.Of(0, 720)),
			pos.Rule("window_position", vec2.Of(10, 10)),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "window_size", verrs[0].Field)
	})

	t.Run("passing rule has a true check", func(t *testing.T) {
		size := validator.MustMinVector(intPtr(1), intPtr(1), true)
		assert.True(t, size.Rule("window_size", vec2.Of(1, 1)).Check())
	})
}
