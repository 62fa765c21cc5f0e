package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/cfgbeast/internal/app"
	"github.com/firefly-engineering/cfgbeast/internal/bsp"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/tui"
)

var (
	bspsDir  string
	bspsMaps string
)

var bspsCmd = &cobra.Command{
	Use:   "bsps",
	Short: "List the maps a write would touch",
	Long: `List the BSP files in the map folder. Maps selected by --maps (or every
map when --maps is empty) are checked.`,
	Args: cobra.NoArgs,
	RunE: runBsps,
}

func init() {
	bspsCmd.Flags().StringVar(&bspsDir, "dir", "", "Map folder (default: working directory)")
	bspsCmd.Flags().StringVar(&bspsMaps, "maps", "", "Maps to select (space separated, shell quoting)")
	rootCmd.AddCommand(bspsCmd)
}

func runBsps(cmd *cobra.Command, args []string) error {
	whitelist, err := bsp.ParseWhitelist(bspsMaps)
	if err != nil {
		return err
	}

	maps := bsp.Load(app.Default.FS, bspsDir)
	if len(maps) == 0 {
		return errors.ErrNoBSPs
	}

	selected := bsp.FilterWhitelist(maps, whitelist)
	entries := bsp.Entries(maps)
	for i := range entries {
		entries[i].Selected = slices.Contains(selected, entries[i].Path)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderChecklist(entries))
	logInfo("%d of %d maps selected", len(selected), len(maps))

	if len(selected) == 0 {
		return errors.ErrNoWhitelistMatch
	}
	return nil
}
