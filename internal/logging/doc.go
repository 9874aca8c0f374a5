// Package logging constructs the slog loggers used across pegboard.
//
// It supports a human-oriented console format for interactive use and a
// JSON format for captured runs, optionally teeing output into a log file
// under the configured log directory. Helper constructors mirror the slog
// attr API so call sites stay terse.
package logging
