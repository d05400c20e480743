// Package logging provides structured logging utilities for netpeek.
//
// It wraps the standard library slog package with netpeek defaults:
// JSON output to stderr, module/version context on every record, and
// source location tracking when running at debug level.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("netpeek", version, "info")
//
//	    slog.Info("starting", "port", 9100)
//	    slog.Error("cycle failed", "error", err)
//	}
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR.
package logging
