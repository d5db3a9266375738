// Package cli implements the localpaint command line.
//
// Running localpaint with no subcommand opens the paint window. The selftest
// subcommand runs the built-in checks headless, and config prints the
// effective configuration as TOML so it can be saved and edited.
//
// All commands accept --config to load a TOML file and --verbose (-v) for
// debug logging.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/selftest"
	"MyLocalPaint/internal/ui"
)

// errSelfTestFailed is returned by the selftest command when any case fails.
var errSelfTestFailed = errors.New("self-test failed")

type options struct {
	configPath string
	verbose    bool
	logOut     io.Writer
	logger     *log.Logger
	cfg        config.Config
	runUI      func(context.Context, config.Config, *log.Logger)
}

// Execute runs the localpaint CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(&options{logOut: os.Stderr, runUI: ui.Run}).ExecuteContext(ctx)
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:          "localpaint",
		Short:        "A small freehand paint sketch",
		Long:         `localpaint opens a canvas with a brush, an eraser, color swatches, undo/redo and PNG/PDF export.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if o.verbose {
				level = log.DebugLevel
			}
			o.logger = newLogger(o.logOut, level)

			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			o.cfg = cfg
			o.logger.Debug("config loaded", "path", o.configPath, "canvas", cfg.Canvas)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			o.runUI(cmd.Context(), o.cfg, o.logger)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSelfTestCmd(o))
	root.AddCommand(newConfigCmd(o))
	return root
}

func newSelfTestCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in checks without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r := selftest.Run(o.logger); !r.OK() {
				return errSelfTestFailed
			}
			return nil
		},
	}
}

func newConfigCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Write(cmd.OutOrStdout(), o.cfg)
		},
	}
}
