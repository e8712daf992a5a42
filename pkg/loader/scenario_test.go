package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browserkit/pkg/loader"
)

const scenarioYAML = `
- type: login
  url: https://app.example.com/login
  user: qa
  password: secret
  logged_in_selector: "#logout"
- type: page
  url: https://app.example.com/dashboard
  wait_until: networkidle
  timeout: 10s
`

func TestParseScenario(t *testing.T) {
	t.Parallel()

	t.Run("decodes login and page steps", func(t *testing.T) {
		seq, err := loader.ParseScenario([]byte(scenarioYAML))
		require.NoError(t, err)
		require.Len(t, seq, 2)

		login, ok := seq[0].(loader.Login)
		require.True(t, ok)
		assert.Equal(t, "https://app.example.com/login", login.URL)
		assert.Equal(t, "qa", login.User)
		assert.Equal(t, "secret", login.Password)
		assert.Equal(t, "#logout", login.LoggedInSelector)

		page, ok := seq[1].(loader.Page)
		require.True(t, ok)
		assert.Equal(t, "https://app.example.com/dashboard", page.URL)
		assert.Equal(t, "networkidle", page.WaitUntil)
		assert.Equal(t, 10*time.Second, page.Timeout)
	})

	t.Run("step type defaults to page", func(t *testing.T) {
		seq, err := loader.ParseScenario([]byte("- url: https://example.com\n"))
		require.NoError(t, err)
		require.Len(t, seq, 1)
		_, ok := seq[0].(loader.Page)
		assert.True(t, ok)
	})

	t.Run("unknown step type", func(t *testing.T) {
		_, err := loader.ParseScenario([]byte("- type: teleport\n  url: https://example.com\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, loader.ErrUnknownStep)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := loader.ParseScenario([]byte("- type: page\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, loader.ErrMissingURL)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		_, err := loader.ParseScenario([]byte("- url: https://example.com\n  timeout: soon\n"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := loader.ParseScenario([]byte("{nope"))
		assert.Error(t, err)
	})
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	t.Run("reads a scenario file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))

		seq, err := loader.LoadScenario(path)
		require.NoError(t, err)
		assert.Len(t, seq, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestLoaderDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "page https://example.com", loader.Page{URL: "https://example.com"}.Describe())
	assert.Equal(t, "login at https://example.com as qa", loader.Login{URL: "https://example.com", User: "qa"}.Describe())
	assert.Equal(t, "sequence of 2 loaders", loader.Sequence{loader.Page{}, loader.Page{}}.Describe())
}

func TestLoadShortCircuits(t *testing.T) {
	t.Parallel()

	t.Run("page without url fails before touching the driver", func(t *testing.T) {
		err := loader.Page{}.Load(context.Background(), nil)
		assert.ErrorIs(t, err, loader.ErrMissingURL)
	})

	t.Run("cancelled context stops a sequence", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := loader.Sequence{loader.Page{URL: "https://example.com"}}.Load(ctx, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
