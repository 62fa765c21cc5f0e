package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/cfgbeast/internal/app"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/generator"
	"github.com/firefly-engineering/cfgbeast/internal/locator"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
)

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)

// resolveInstall resolves the installation directory, pointing the user at
// locate --rescan when the saved record is unreadable.
func resolveInstall() (locator.Resolution, error) {
	res, err := app.Default.Resolve()
	if err != nil && errors.GetExitCode(err) == errors.ExitParse {
		logWarning("Run 'cfgbeast locate --rescan' to rebuild %s", app.Default.Store.Path())
	}
	return res, err
}

// trimCvars drops trailing line breaks; the writer adds its own.
func trimCvars(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// readCvars returns the cvar text from --cvars or --cvars-file ("-" reads stdin).
func readCvars(cmd *cobra.Command, text, file string) (string, error) {
	if text != "" && file != "" {
		return "", errors.ValidationError("use either --cvars or --cvars-file, not both")
	}
	if file == "" {
		return text, nil
	}

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = app.Default.FS.ReadFile(file)
	}
	if err != nil {
		return "", errors.IOError("read", file, err)
	}
	return trimCvars(string(data)), nil
}

// reportResult prints the outcome of a write request. A batch that
// processed nothing is reported as ErrNothingWritten.
func reportResult(n int, err error) error {
	if err != nil {
		return err
	}

	_, msg := generator.Summary(n)
	if n <= 0 {
		logWarning("%s", msg)
		return errors.ErrNothingWritten
	}
	logSuccess("%s", msg)
	return nil
}

// statusLine renders the outcome of a write request for the picker.
func statusLine(n int, err error) string {
	if err != nil {
		return errors.TitleOf(err) + ": " + err.Error()
	}
	_, msg := generator.Summary(n)
	return msg
}
