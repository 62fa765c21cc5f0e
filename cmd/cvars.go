package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/cfgbeast/internal/app"
	"github.com/firefly-engineering/cfgbeast/internal/cvar"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
)

var cvarsSkill bool

var cvarsCmd = &cobra.Command{
	Use:   "cvars",
	Short: "List the cvar presets of the installation",
	Long: `List the cvars read from default_map_settings.cfg in the Sven Co-op
installation, plus map keys and cvars the game accepts but that file omits.
With --skill, list the cvars of skill.cfg instead.`,
	Args: cobra.NoArgs,
	RunE: runCvars,
}

func init() {
	cvarsCmd.Flags().BoolVar(&cvarsSkill, "skill", false, "List skill.cfg cvars")
	rootCmd.AddCommand(cvarsCmd)
}

func runCvars(cmd *cobra.Command, args []string) error {
	if _, err := resolveInstall(); err != nil {
		return err
	}

	catalog, err := app.Default.Catalog()
	if err != nil {
		return err
	}

	cvars := catalog.Cvars(cvarsSkill)
	if cvar.IsFailure(cvars) {
		return errors.New(errors.ExitIO, "Failed to load cvars", strings.TrimPrefix(cvars[1], "Reason: "))
	}

	out := cmd.OutOrStdout()
	for _, c := range cvars {
		fmt.Fprintln(out, c)
	}
	return nil
}
