package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/dmitrymomot/browserkit/pkg/config"
	"github.com/dmitrymomot/browserkit/pkg/vec2"
)

// Fallback viewport per component when the configured window size leaves a
// component absent.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// Options controls a browser session launch.
type Options struct {
	Headless bool

	// WindowSize is the viewport; absent components fall back to the
	// package defaults independently.
	WindowSize vec2.Vector

	// WindowPosition places the window on screen for headed runs; ignored
	// when a component is absent or Headless is set.
	WindowPosition vec2.Vector

	// Timeout is the default for page operations; zero means 30s.
	Timeout time.Duration

	// Logger for session lifecycle events; nil discards them.
	Logger *slog.Logger
}

// OptionsFromSettings maps loaded configuration onto session options.
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		Headless:       s.Headless,
		WindowSize:     s.WindowSize,
		WindowPosition: s.WindowPosition,
		Timeout:        s.NavigationTimeout,
	}
}

// Session owns one browser, context, and page for a test run.
type Session struct {
	ID   string
	Page playwright.Page

	pw         *playwright.Playwright
	browser    playwright.Browser
	browserCtx playwright.BrowserContext
	log        *slog.Logger
	closed     bool
}

// Start installs the playwright driver if needed, launches a chromium
// browser, and opens a single page with the configured viewport.
func Start(opts Options) (*Session, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}
	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
		Args:     launchArgs(opts),
	}
	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	viewport := viewportSize(opts.WindowSize)
	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: viewport,
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(float64(opts.Timeout.Milliseconds()))

	s := &Session{
		ID:         uuid.NewString(),
		Page:       page,
		pw:         pw,
		browser:    browser,
		browserCtx: browserCtx,
		log:        log,
	}
	log.Info("browser session started",
		"session_id", s.ID,
		"headless", opts.Headless,
		"viewport", fmt.Sprintf("%dx%d", viewport.Width, viewport.Height),
	)
	return s, nil
}

// Run executes a loader against the session's page, logging the step.
func (s *Session) Run(ctx context.Context, l Loader) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.log.Debug("running loader", "session_id", s.ID, "loader", l.Describe())
	if err := l.Load(ctx, s.Page); err != nil {
		s.log.Error("loader failed", "session_id", s.ID, "loader", l.Describe(), "error", err)
		return err
	}
	return nil
}

// Close tears down page, context, browser, and the playwright runner.
// Safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.log.Info("closing browser session", "session_id", s.ID)

	var firstErr error
	if err := s.Page.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.browserCtx.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.browser.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.pw.Stop(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// viewportSize resolves the configured window size to a concrete viewport,
// each absent component falling back independently.
func viewportSize(size vec2.Vector) *playwright.Size {
	width := DefaultViewportWidth
	if size.X.Valid {
		width = size.X.Value
	}
	height := DefaultViewportHeight
	if size.Y.Valid {
		height = size.Y.Value
	}
	return &playwright.Size{Width: width, Height: height}
}

// launchArgs builds chromium flags; window placement only applies to headed
// runs with both position components present.
func launchArgs(opts Options) []string {
	if opts.Headless {
		return nil
	}
	pos := opts.WindowPosition
	if !pos.X.Valid || !pos.Y.Valid {
		return nil
	}
	return []string{fmt.Sprintf("--window-position=%d,%d", pos.X.Value, pos.Y.Value)}
}
