// Package logger provides a thin factory around Go's slog package with
// functional options for format, level, output, and static attributes.
//
// Browser test runs default to JSON output at INFO level so CI log
// aggregation stays structured; WithDevelopment switches to text output at
// DEBUG level for local debugging of driver interactions.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithDevelopment("checkout-tests"),
//	)
//	log.Info("session started", "viewport", size)
package logger
