package vec2

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotAVector is returned by FromEnv when a programmatic value is neither
// a string, nil, nor anything Convert can handle.
var ErrNotAVector = errors.New("value is not convertible to a vector")

var (
	// '1280' — a token of the space-delimited tier.
	reDigits = regexp.MustCompile(`^[0-9]+$`)
	// '1280x720', '1280x', 'x720', 'x' — any single non-digit separator.
	reSeparated = regexp.MustCompile(`^([0-9]+)?[^0-9]([0-9]+)?$`)
	// First one or two digit runs anywhere in a noisy string.
	reScan = regexp.MustCompile(`([0-9]+)(?:[^0-9]+([0-9]+))?`)
)

// tierFunc is one parsing tier: it either produces a component pair or
// reports that the input does not fit its format.
type tierFunc func(raw string) (x, y Component, ok bool)

var tiers = []tierFunc{parseSpaced, parseSeparated, scanDigits}

// Parse turns a raw string into a Vector, trying the three tiers in order of
// decreasing strictness; the first tier that recognizes the input wins.
// ok is false when the string is empty, contains no digits, or resolves to a
// pair with both components absent — all of which mean "no value provided".
func Parse(raw string) (Vector, bool) {
	if raw == "" {
		return Vector{}, false
	}
	for _, tier := range tiers {
		x, y, ok := tier(raw)
		if !ok {
			continue
		}
		if !x.Valid && !y.Valid {
			// Parsed but fully absent: treated as no value, and no
			// fallthrough to a more tolerant tier.
			return Vector{}, false
		}
		return Vector{X: x, Y: y}, true
	}
	return Vector{}, false
}

// parseSpaced handles the exact space-delimited form: one or two tokens
// separated by a single literal space, each token empty or all digits.
// A single token broadcasts to both components; an empty token maps its
// position to absent.
func parseSpaced(raw string) (Component, Component, bool) {
	parts := strings.Split(raw, " ")
	if len(parts) > 2 {
		return None(), None(), false
	}
	for _, p := range parts {
		if p != "" && !reDigits.MatchString(p) {
			return None(), None(), false
		}
	}
	x, ok := tokenComponent(parts[0])
	if !ok {
		return None(), None(), false
	}
	if len(parts) == 1 {
		if !x.Valid {
			return None(), None(), false
		}
		return x, x, true
	}
	y, ok := tokenComponent(parts[1])
	if !ok {
		return None(), None(), false
	}
	return x, y, true
}

// parseSeparated handles the exact single-separator form: an optional digit
// run, exactly one non-digit rune, and another optional digit run, matched
// against the whole trimmed and lower-cased string.
func parseSeparated(raw string) (Component, Component, bool) {
	m := reSeparated.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return None(), None(), false
	}
	x, ok := tokenComponent(m[1])
	if !ok {
		return None(), None(), false
	}
	y, ok := tokenComponent(m[2])
	if !ok {
		return None(), None(), false
	}
	return x, y, true
}

// scanDigits is the best-effort tier: it extracts the first one or two digit
// runs from the raw, non-normalized string, ignoring everything else. A lone
// run broadcasts to both components.
func scanDigits(raw string) (Component, Component, bool) {
	m := reScan.FindStringSubmatch(raw)
	if m == nil {
		return None(), None(), false
	}
	x, ok := tokenComponent(m[1])
	if !ok || !x.Valid {
		return None(), None(), false
	}
	if m[2] == "" {
		return x, x, true
	}
	y, ok := tokenComponent(m[2])
	if !ok {
		return None(), None(), false
	}
	return x, y, true
}

// tokenComponent maps a digit-run token to a Component; an empty token is
// the absent component. ok is false only when the run overflows int.
func tokenComponent(token string) (Component, bool) {
	if token == "" {
		return None(), true
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return None(), false
	}
	return Int(n), true
}

// FromEnv resolves a raw environment value to a Vector.
//
// nil resolves to no value. Strings run through Parse, where a parse miss is
// likewise no value, never an error. Anything else goes through Convert, and
// a conversion failure there is a contract violation reported as an error
// wrapping ErrNotAVector — programmatic callers must hand in nil, a string,
// a Vector, an int, or a two-element sequence of ints.
func FromEnv(value any) (Vector, bool, error) {
	if value == nil {
		return Vector{}, false, nil
	}
	if s, ok := value.(string); ok {
		v, ok := Parse(s)
		return v, ok, nil
	}
	v, ok := Convert(value)
	if !ok {
		return Vector{}, false, fmt.Errorf("%w: expected an env string, nil, Vector, int, or two-element int sequence, got %#v", ErrNotAVector, value)
	}
	return v, true, nil
}

// FromEnvOrZero is FromEnv with the all-absent Vector substituted when no
// value resolves.
func FromEnvOrZero(value any) (Vector, error) {
	v, ok, err := FromEnv(value)
	if err != nil {
		return Vector{}, err
	}
	if !ok {
		return Vector{}, nil
	}
	return v, nil
}
