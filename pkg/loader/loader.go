package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Default selectors for the Login loader, matching the common
// username/password form markup. Override per site when they differ.
const (
	DefaultUserSelector     = `input[name="username"]`
	DefaultPasswordSelector = `input[name="password"]`
	DefaultSubmitSelector   = `button[type="submit"]`
)

// Loader is a single step that brings a page into an expected state.
// Implementations must be safe to reuse across pages and goroutines.
type Loader interface {
	Load(ctx context.Context, page playwright.Page) error
	Describe() string
}

// Page navigates to a URL and waits for the load state.
type Page struct {
	URL string

	// WaitUntil is when navigation counts as complete: "load" (driver
	// default), "domcontentloaded", or "networkidle".
	WaitUntil string

	// Timeout bounds the navigation; zero uses the session default.
	Timeout time.Duration
}

func (p Page) Load(ctx context.Context, page playwright.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.URL == "" {
		return ErrMissingURL
	}

	opts := playwright.PageGotoOptions{}
	if p.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(p.WaitUntil)
		opts.WaitUntil = &waitUntil
	}
	if p.Timeout > 0 {
		timeout := float64(p.Timeout.Milliseconds())
		opts.Timeout = &timeout
	}

	if _, err := page.Goto(p.URL, opts); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", p.URL, err)
	}
	return nil
}

func (p Page) Describe() string {
	return fmt.Sprintf("page %s", p.URL)
}

// Login ensures a user is logged in. It navigates to the login URL and, when
// a LoggedInSelector is configured and already present, does nothing more;
// otherwise it fills the credentials, submits, and waits for the marker.
type Login struct {
	URL       string
	User      string
	Password  string
	WaitUntil string
	Timeout   time.Duration

	// Form selectors; empty values fall back to the package defaults.
	UserSelector     string
	PasswordSelector string
	SubmitSelector   string

	// LoggedInSelector marks the logged-in state, e.g. a logout button.
	// When empty, Login always submits the form and does not wait after.
	LoggedInSelector string
}

func (l Login) Load(ctx context.Context, page playwright.Page) error {
	nav := Page{URL: l.URL, WaitUntil: l.WaitUntil, Timeout: l.Timeout}
	if err := nav.Load(ctx, page); err != nil {
		return err
	}

	if l.LoggedInSelector != "" {
		marker, err := page.QuerySelector(l.LoggedInSelector)
		if err == nil && marker != nil {
			return nil
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	userSel := l.UserSelector
	if userSel == "" {
		userSel = DefaultUserSelector
	}
	passSel := l.PasswordSelector
	if passSel == "" {
		passSel = DefaultPasswordSelector
	}
	submitSel := l.SubmitSelector
	if submitSel == "" {
		submitSel = DefaultSubmitSelector
	}

	if err := page.Fill(userSel, l.User); err != nil {
		return fmt.Errorf("filling user field failed: %w", err)
	}
	if err := page.Fill(passSel, l.Password); err != nil {
		return fmt.Errorf("filling password field failed: %w", err)
	}
	if err := page.Click(submitSel); err != nil {
		return fmt.Errorf("submitting login form failed: %w", err)
	}

	if l.LoggedInSelector != "" {
		waitOpts := playwright.PageWaitForSelectorOptions{}
		if l.Timeout > 0 {
			timeout := float64(l.Timeout.Milliseconds())
			waitOpts.Timeout = &timeout
		}
		if _, err := page.WaitForSelector(l.LoggedInSelector, waitOpts); err != nil {
			return fmt.Errorf("waiting for logged-in marker %q failed: %w", l.LoggedInSelector, err)
		}
	}
	return nil
}

func (l Login) Describe() string {
	return fmt.Sprintf("login at %s as %s", l.URL, l.User)
}

// Sequence runs loaders in order, stopping at the first failure.
type Sequence []Loader

func (s Sequence) Load(ctx context.Context, page playwright.Page) error {
	for _, l := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Load(ctx, page); err != nil {
			return fmt.Errorf("%s: %w", l.Describe(), err)
		}
	}
	return nil
}

func (s Sequence) Describe() string {
	return fmt.Sprintf("sequence of %d loaders", len(s))
}
