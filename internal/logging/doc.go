// Package logging provides logging utilities for cfgbeast.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog, rendered by charmbracelet/log)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("writing cfg", "target", target, "op", op)
//	logging.Warn("write-through failed", "path", path, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Searching for %s...", marker)
//	logging.UserSuccess("Processed %d .cfg file(s).", n)
//	logging.UserWarning("No matching BSP files found")
//	logging.UserError("Failed to load cvars: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// SetUserOutput swaps both streams, which the command tests rely on.
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
