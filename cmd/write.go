package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/cfgbeast/internal/app"
	"github.com/firefly-engineering/cfgbeast/internal/bsp"
	"github.com/firefly-engineering/cfgbeast/internal/generator"
)

var (
	writeCvars     string
	writeCvarsFile string
	writeSkill     bool
	writeDir       string
	writeMaps      string
)

var createCmd = newWriteCommand(generator.Overwrite, "create", []string{"overwrite"},
	"Create or overwrite the config of every map",
	`Write the given cvars as the config of every map in the folder, replacing
any existing config.`)

var appendCmd = newWriteCommand(generator.Append, "append", []string{"add"},
	"Append cvars to the config of every map",
	`Add the given cvars to the end of the config of every map in the folder,
creating configs that do not exist yet.`)

var removeCmd = newWriteCommand(generator.Remove, "remove", nil,
	"Remove cvars from existing map configs",
	`Strip every line of the given cvars from the existing config of every map
in the folder. Matching is by plain text anywhere in the file, so removing
"mp_timeleft" also shortens "mp_timeleft_empty 1".`)

var deleteCmd = newWriteCommand(generator.Delete, "delete", nil,
	"Delete the config of every map",
	`Delete the config of every map in the folder. No cvars are needed.`)

func newWriteCommand(op generator.Operation, use string, aliases []string, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Long: long + `

Configs are named <map>.cfg, or <map>_skl.cfg with --skill. --maps narrows
the maps to a space separated list of names; quote names with spaces:

  cfgbeast ` + use + ` --maps "hl_c00 'my map'"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, op)
		},
	}
}

func init() {
	for _, cmd := range []*cobra.Command{createCmd, appendCmd, removeCmd, deleteCmd} {
		cmd.Flags().StringVar(&writeCvars, "cvars", "", "Cvar lines to write (separate lines with newlines)")
		cmd.Flags().StringVar(&writeCvarsFile, "cvars-file", "", "Read cvars from a file, or - for stdin")
		cmd.Flags().BoolVar(&writeSkill, "skill", false, "Target <map>_skl.cfg skill configs")
		cmd.Flags().StringVar(&writeDir, "dir", "", "Map folder (default: working directory)")
		cmd.Flags().StringVar(&writeMaps, "maps", "", "Only these maps (space separated, shell quoting)")
		rootCmd.AddCommand(cmd)
	}
}

func runWrite(cmd *cobra.Command, op generator.Operation) error {
	cvars, err := readCvars(cmd, writeCvars, writeCvarsFile)
	if err != nil {
		return err
	}

	whitelist, err := bsp.ParseWhitelist(writeMaps)
	if err != nil {
		return err
	}

	n, err := app.Default.Create(generator.Request{
		Cvars:     cvars,
		Operation: op,
		Skill:     writeSkill,
		Dir:       writeDir,
		Whitelist: whitelist,
	})
	return reportResult(n, err)
}
