// Package config provides a type-safe, generic and cached way to load
// browser test run configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a convenient API that:
//
//   - Loads values from a `.env` file in the current working directory when
//     one exists (best effort, errors ignored).
//   - Parses the environment into any Go struct using field tags, with
//     vec2.Vector fields going through the tolerant three-tier vector parser
//     (so WINDOW_SIZE accepts "1280x720", "1280 720", or noisier strings).
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process; Reset clears the cache for tests.
//   - Exposes MustLoad for configuration the run cannot start without.
//
// The Settings struct in this package is the canonical configuration for a
// browser test run: window geometry, headless mode, base URL, credentials,
// and navigation timeout. LoadSettings resolves it and applies the validator
// constraints (window size components at least 1, position components at
// least 0, each component independently allowed to stay absent).
//
// # Architecture
//
// Internally the package keeps a singleton cache that stores parsed struct
// copies keyed by their fully-qualified type name. Each key also holds a
// `sync.Once` guaranteeing the parsing work is executed at most once per
// configuration type even when accessed from multiple goroutines
// concurrently. Low-level parsing is delegated to `env.ParseWithOptions`.
package config
