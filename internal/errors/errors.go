package errors

import (
	"errors"
	"fmt"
)

// Exit codes for cfgbeast
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitValidation   = 2
	ExitNotFound     = 3
	ExitIO           = 4
	ExitParse        = 5
	ExitEnvironment  = 6
)

// CfgError is the base error type for cfgbeast.
// Title is a short heading a front end can show above Message.
type CfgError struct {
	Code    int
	Title   string
	Message string
	Cause   error
}

func (e *CfgError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CfgError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CfgError) ExitCode() int {
	return e.Code
}

// New creates a new CfgError
func New(code int, title, message string) *CfgError {
	return &CfgError{
		Code:    code,
		Title:   title,
		Message: message,
	}
}

// Wrap wraps an existing error with a CfgError
func Wrap(code int, title, message string, cause error) *CfgError {
	return &CfgError{
		Code:    code,
		Title:   title,
		Message: message,
		Cause:   cause,
	}
}

// Sentinel errors returned by the config writer and the install locator.
// Compare with Is; they are never wrapped in place.
var (
	ErrNoCvars = New(ExitValidation, "No CVars specified",
		"no cvars given; enter cvars and try again")

	ErrNoBSPs = New(ExitNotFound, "No BSP files found",
		"no BSP files found; run from a map folder with valid BSPs or pass --dir")

	ErrNoWhitelistMatch = New(ExitNotFound, "No matching BSP files found",
		"no BSP files matched the whitelist; adjust the whitelist or the map folder")

	ErrInstallNotFound = New(ExitNotFound, "Sven Co-op install Not Found",
		"could not find a valid Sven Co-op installation; run from the 'Sven Co-op/svencoop' folder and try again")

	ErrNothingWritten = New(ExitIO, "No CFG files written",
		"no CFG files written")
)

// Common error constructors

// ValidationError returns an error for input validation failures
func ValidationError(message string) *CfgError {
	return New(ExitValidation, "Invalid input", message)
}

// IOError returns an error for a failed read, write or delete of path.
func IOError(op, path string, cause error) *CfgError {
	return Wrap(ExitIO, "I/O error", fmt.Sprintf("%s %s failed", op, path), cause)
}

// ParseError returns an error for a persisted file that could not be decoded.
func ParseError(path string, cause error) *CfgError {
	return Wrap(ExitParse, "Invalid settings file", fmt.Sprintf("failed to parse %s", path), cause)
}

// EnvironmentError returns an error for a missing or unusable host location.
func EnvironmentError(message string, cause error) *CfgError {
	return Wrap(ExitEnvironment, "Environment error", message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var cfgErr *CfgError
	if errors.As(err, &cfgErr) {
		return cfgErr.ExitCode()
	}
	return ExitGeneralError
}

// TitleOf returns the title of the first CfgError in err's chain,
// or "Error" when there is none.
func TitleOf(err error) string {
	var cfgErr *CfgError
	if errors.As(err, &cfgErr) && cfgErr.Title != "" {
		return cfgErr.Title
	}
	return "Error"
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
