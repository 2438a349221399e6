package commands

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"killerpack/internal/app"
	"killerpack/internal/logging"
)

var (
	configPath string
	cfg        app.Config
	appCtx     *app.App
	logger     logging.Logger = logging.NopLogger{}

	flagInput    string
	flagArchive  string
	flagIndex    string
	flagExts     []string
	flagValidate bool
	flagLogLevel string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "killerpack",
		Short:        "Compile Killer Sudoku definitions into a binary archive and index",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			c, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			cfg = c
			logger = logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
			appCtx, err = app.NewFromConfig(cfg, logger)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file (default ./"+app.DefaultConfigFile+" if present)")
	pf.StringVar(&flagInput, "in", "", "directory of puzzle definition files")
	pf.StringVar(&flagArchive, "archive", "", "archive output path")
	pf.StringVar(&flagIndex, "index", "", "index output path")
	pf.StringSliceVar(&flagExts, "ext", nil, "puzzle file extensions (e.g. .txt)")
	pf.BoolVar(&flagValidate, "validate", false, "require cages to cover every cell exactly once")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(buildCmd(), checkCmd(), lookupCmd(), fingerprintCmd(), initCmd())
	return root
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (app.Config, error) {
	c := app.DefaultConfig()
	path := configPath
	if path == "" {
		if _, err := os.Stat(app.DefaultConfigFile); err == nil {
			path = app.DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return c, err
		}
	}
	if path != "" {
		loaded, err := app.LoadConfig(path)
		if err != nil {
			return c, err
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("in") {
		c.Input = flagInput
	}
	if flags.Changed("archive") {
		c.Archive = flagArchive
	}
	if flags.Changed("index") {
		c.Index = flagIndex
	}
	if flags.Changed("ext") {
		c.Extensions = flagExts
	}
	if flags.Changed("validate") {
		c.CheckPartition = flagValidate
	}
	if flags.Changed("log-level") {
		c.LogLevel = flagLogLevel
	}
	return c, c.Validate()
}
