package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestCfgError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *CfgError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "Oops", "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "Oops", "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestCfgError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "", "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "", "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestSentinelCodes(t *testing.T) {
	tests := []struct {
		name  string
		err   *CfgError
		code  int
		title string
	}{
		{"no cvars", ErrNoCvars, ExitValidation, "No CVars specified"},
		{"no bsps", ErrNoBSPs, ExitNotFound, "No BSP files found"},
		{"no whitelist match", ErrNoWhitelistMatch, ExitNotFound, "No matching BSP files found"},
		{"install not found", ErrInstallNotFound, ExitNotFound, "Sven Co-op install Not Found"},
		{"nothing written", ErrNothingWritten, ExitIO, "No CFG files written"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.code)
			}
			if tt.err.Title != tt.title {
				t.Errorf("Title = %q, want %q", tt.err.Title, tt.title)
			}
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	if Is(ErrNoBSPs, ErrNoWhitelistMatch) {
		t.Error("ErrNoBSPs must not match ErrNoWhitelistMatch")
	}
	if Is(ErrNoWhitelistMatch, ErrNoBSPs) {
		t.Error("ErrNoWhitelistMatch must not match ErrNoBSPs")
	}
	if !Is(fmt.Errorf("create: %w", ErrNoBSPs), ErrNoBSPs) {
		t.Error("wrapped ErrNoBSPs should still match")
	}
}

func TestIOError(t *testing.T) {
	err := IOError("write", "/maps/a.cfg", fs.ErrPermission)

	if err.Code != ExitIO {
		t.Errorf("Code = %d, want %d", err.Code, ExitIO)
	}
	if err.Message != "write /maps/a.cfg failed" {
		t.Errorf("Message = %q, want %q", err.Message, "write /maps/a.cfg failed")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("IOError should unwrap to its cause")
	}
}

func TestParseError(t *testing.T) {
	cause := fmt.Errorf("bare keys cannot contain '!'")
	err := ParseError("/data/CFGBeast.toml", cause)

	if err.Code != ExitParse {
		t.Errorf("Code = %d, want %d", err.Code, ExitParse)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestEnvironmentError(t *testing.T) {
	err := EnvironmentError("no per-user data directory", nil)

	if err.Code != ExitEnvironment {
		t.Errorf("Code = %d, want %d", err.Code, ExitEnvironment)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("unknown operation \"frob\"")

	if err.Code != ExitValidation {
		t.Errorf("Code = %d, want %d", err.Code, ExitValidation)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "CfgError",
			err:      ErrNoBSPs,
			wantCode: ExitNotFound,
		},
		{
			name:     "wrapped CfgError",
			err:      fmt.Errorf("outer: %w", ParseError("x", nil)),
			wantCode: ExitParse,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestTitleOf(t *testing.T) {
	if got := TitleOf(fmt.Errorf("wrap: %w", ErrNoCvars)); got != "No CVars specified" {
		t.Errorf("TitleOf() = %q, want %q", got, "No CVars specified")
	}
	if got := TitleOf(fmt.Errorf("plain")); got != "Error" {
		t.Errorf("TitleOf() = %q, want %q", got, "Error")
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", ErrInstallNotFound)

	var target *CfgError
	if !As(wrapped, &target) {
		t.Fatal("As() should return true for wrapped CfgError")
	}
	if target.Code != ExitNotFound {
		t.Errorf("target.Code = %d, want %d", target.Code, ExitNotFound)
	}

	regularErr := fmt.Errorf("regular error")
	if As(regularErr, &target) {
		t.Error("As() should return false for non-CfgError")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitIO, "I/O error", "write failed", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var cfgErr *CfgError
	if !errors.As(outer, &cfgErr) {
		t.Fatal("errors.As should find CfgError")
	}
	if cfgErr.Code != ExitIO {
		t.Errorf("Code = %d, want %d", cfgErr.Code, ExitIO)
	}
}
