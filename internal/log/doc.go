// Package log provides logging utilities with optional contact redaction.
//
// The RedactHandler wraps any slog.Handler and masks email addresses and
// phone numbers in log attributes, keeping collected contact data out of
// terminal scrollback and shipped logs.
package log
