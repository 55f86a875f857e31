// Package logger is a thin factory around log/slog providing consistent,
// option-configured loggers for the toolkit.
//
// New returns a ready slog.Logger; behavior is adjusted through Option
// functions (WithLevel, WithFormat, WithOutput, WithAttr, WithDevelopment).
// The attr helpers (Error, UserID) standardize common attribute keys across
// packages.
package logger
