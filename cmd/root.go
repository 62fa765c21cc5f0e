package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/cfgbeast/internal/app"
	"github.com/firefly-engineering/cfgbeast/internal/bsp"
	"github.com/firefly-engineering/cfgbeast/internal/config"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/generator"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
	"github.com/firefly-engineering/cfgbeast/internal/tui"
)

var (
	verbose    bool
	jsonOutput bool
	dataDir    string
	scanDepth  int
)

// runPicker runs the interactive front end; replaced in tests.
var runPicker = tui.Run

var rootCmd = &cobra.Command{
	Use:   "cfgbeast [file.cfg ...]",
	Short: "Generate per-map config files for Sven Co-op",
	Long: `cfgbeast creates, appends to, strips and deletes the per-map config files
(<map>.cfg and <map>_skl.cfg) next to the BSP files in a map folder.

Without arguments it opens an interactive editor for the working directory.
Each *.cfg file given as an argument is written as the config of every map
in the working directory. *_motd.txt arguments are not supported and are
skipped.

Operations:
  overwrite  create or overwrite the config of every selected map
  append     add cvars to the end of existing configs
  remove     strip the given cvars from existing configs
  delete     delete the configs of every selected map`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
		return initApp(cmd)
	},
	RunE: runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the CFGBeast settings folder (env CFGBEAST_DATA_DIR)")
	rootCmd.PersistentFlags().IntVar(&scanDepth, "scan-depth", config.DefaultScanDepth, "How deep to search for the game install (env CFGBEAST_SCAN_DEPTH)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initApp builds the application context from flags and the environment.
func initApp(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	app.SetDefault(app.New(
		app.WithSettings(settings),
		app.WithScanNotice(func() {
			logInfo("Searching for the Sven Co-op installation, this can take a while...")
		}),
	))
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	res, err := resolveInstall()
	if err != nil {
		return err
	}
	logging.Debug("using install dir", "dir", res.Dir, "source", res.Source.String())

	if len(args) == 0 {
		return runInteractive()
	}
	return dispatchFiles(args)
}

// dispatchFiles writes each *.cfg argument as the config of every map in
// the working directory.
func dispatchFiles(args []string) error {
	logging.Debug("dispatching files", "argv", shellquote.Join(args...))

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	var firstErr error
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasSuffix(lower, "_motd.txt"):
			logWarning("MOTD files are not supported, skipping %s", arg)

		case filepath.Ext(lower) == ".cfg":
			data, err := app.Default.FS.ReadFile(arg)
			if err != nil {
				logWarning("Cannot read %s: %v", arg, err)
				continue
			}

			req := generator.Request{
				Cvars:     trimCvars(string(data)),
				Operation: generator.Overwrite,
				Dir:       wd,
			}
			n, err := app.Default.Create(req)
			if err := reportResult(n, err); err != nil && firstErr == nil {
				firstErr = err
			}

		default:
			logging.Debug("ignoring argument", "arg", arg)
		}
	}
	return firstErr
}

// runInteractive shows the picker until the user quits, applying each
// submitted request to the maps in the working directory.
func runInteractive() error {
	catalog, err := app.Default.Catalog()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	opts := tui.Options{Cvars: catalog.Cvars}
	for {
		opts.Maps = bsp.Load(app.Default.FS, wd)
		if len(opts.Maps) == 0 && opts.Status == "" {
			opts.Status = statusLine(generator.Failed, errors.ErrNoBSPs)
		}

		result, err := runPicker(opts)
		if err != nil {
			return err
		}
		if result.Action != tui.ActionSubmit {
			return nil
		}

		n, err := app.Default.Create(result.Request(wd))
		logging.Debug("request applied", "operation", result.Operation.String(), "count", n)

		opts.Status = statusLine(n, err)
		opts.Text = result.Cvars
		opts.Skill = result.Skill
	}
}
