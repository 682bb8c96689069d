// Package logging assembles structured slog loggers and formatting helpers used
// across m3umerge commands.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so a merge run can tag every log
// line with its run ID. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
//
// Logs default to stderr; stdout is reserved for command output such as
// summaries and JSON reports.
package logging
