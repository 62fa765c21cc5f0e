package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/cfgbeast/internal/app"
	"github.com/firefly-engineering/cfgbeast/internal/locator"
)

var (
	locateRescan bool
	locateForget bool
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the Sven Co-op installation in use",
	Long: `Print the game content directory (the folder holding
default_map_settings.cfg). The directory is found once, from the working
directory or by searching the drives, and saved for later runs.

  --rescan  search again and replace the saved directory
  --forget  delete the saved directory`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().BoolVar(&locateRescan, "rescan", false, "Search again and save the result")
	locateCmd.Flags().BoolVar(&locateForget, "forget", false, "Delete the saved directory")
	locateCmd.MarkFlagsMutuallyExclusive("rescan", "forget")
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	if locateForget {
		if err := app.Default.Forget(); err != nil {
			return err
		}
		logSuccess("Forgot the saved installation (%s)", app.Default.Store.Path())
		return nil
	}

	var res locator.Resolution
	var err error
	if locateRescan {
		res, err = app.Default.Rescan()
	} else {
		res, err = resolveInstall()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Dir)
	logInfo("Found via %s", res.Source)
	return nil
}
