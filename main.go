package main

import (
	"os"

	"github.com/firefly-engineering/cfgbeast/cmd"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.UserError("%s: %v", errors.TitleOf(err), err)
		os.Exit(errors.GetExitCode(err))
	}
}
