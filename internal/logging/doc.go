// Package logging provides slog setup and shared structured-logging
// attribute helpers so packages agree on key names and email anonymization.
package logging
