// Package errors provides typed errors with exit codes for cfgbeast.
//
// # Error Types
//
// CfgError is the base error type that wraps an error with an exit code
// and a short title for presenters:
//
//	type CfgError struct {
//	    Code    int    // Exit code
//	    Title   string // Heading, e.g. "No BSP files found"
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitValidation   = 2  // Empty cvars for a writing operation, bad flags
//	ExitNotFound     = 3  // No BSPs, no whitelist match, no installation
//	ExitIO           = 4  // A file read, write or delete failed
//	ExitParse        = 5  // The persisted location record is malformed
//	ExitEnvironment  = 6  // No per-user data directory
//
// # Sentinels
//
// The config writer and locator return fixed sentinels so callers can tell
// the failure cases apart:
//
//	if errors.Is(err, errors.ErrNoWhitelistMatch) {
//	    // adjust whitelist
//	}
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
