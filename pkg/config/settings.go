package config

import (
	"time"

	"github.com/dmitrymomot/browserkit/pkg/validator"
	"github.com/dmitrymomot/browserkit/pkg/vec2"
)

// Settings is the browser test run configuration resolved from environment
// variables. Window geometry values accept any format the vec2 parser
// understands; unset or unparseable values stay all-absent and the driver
// falls back to its defaults.
type Settings struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool `env:"BROWSER_HEADLESS" envDefault:"true"`

	// WindowSize is the browser viewport, e.g. "1280x720" or "1280 720".
	WindowSize vec2.Vector `env:"WINDOW_SIZE"`

	// WindowPosition is the window placement on screen for headed runs.
	WindowPosition vec2.Vector `env:"WINDOW_POSITION"`

	// BaseURL is the root URL page loaders resolve relative paths against.
	BaseURL string `env:"BASE_URL"`

	// LoginUser and LoginPassword feed the login page loader.
	LoginUser     string `env:"LOGIN_USER"`
	LoginPassword string `env:"LOGIN_PASSWORD"`

	// NavigationTimeout bounds every page navigation and selector wait.
	NavigationTimeout time.Duration `env:"NAVIGATION_TIMEOUT" envDefault:"30s"`
}

// Window components must be at least 1x1 when present; positions may be any
// non-negative offset. Constraints are built once at package init.
var (
	windowSizeBound     = validator.MustMinVector(intPtr(1), intPtr(1), true)
	windowPositionBound = validator.MustMinVector(intPtr(0), intPtr(0), true)
)

// Validate checks the loaded settings and aggregates every field failure.
func (s Settings) Validate() error {
	return validator.Apply(
		windowSizeBound.Rule("window_size", s.WindowSize),
		windowPositionBound.Rule("window_position", s.WindowPosition),
		validator.MinNum("navigation_timeout", s.NavigationTimeout, time.Second),
	)
}

// LoadSettings resolves and validates Settings in one call.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func intPtr(v int) *int {
	return &v
}
