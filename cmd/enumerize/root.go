package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/enumerize/cmd/enumerize/commands"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/config"
	"github.com/walteh/enumerize/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
}

// newRootCmd creates the root command. root is filled in before any
// subcommand runs.
func newRootCmd(root *opts.RootOpts) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "enumerize",
		Short: "Turn lines of text into a TypeScript enum and data table",
		Long: `enumerize replaces a document, or a selected range of it, with an exported
TypeScript enum built from its non-blank lines. When data keys are given it
also writes a constant object that maps every enum member to placeholder data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := f.setupLogging(cmd.Context(), cmd.ErrOrStderr())

			root.Console = log.New(cmd.ErrOrStderr(), *zerolog.Ctx(ctx))
			ctx = log.NewContext(ctx, root.Console)
			cmd.SetContext(ctx)

			cfg, err := config.LoadOrDefault(ctx, f.configFile, cmd.Flags().Changed("config"))
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			root.Config = cfg

			zerolog.Ctx(ctx).Debug().
				Str("config", cfg.Location()).
				Stringer("settings", cfg).
				Msg("configuration ready")
			return nil
		},
	}

	f.register(cmd)

	cmd.AddCommand(
		commands.NewDocumentCmd(root),
		commands.NewSelectionCmd(root),
		commands.NewBatchCmd(root),
		newVersionCmd(),
	)

	return cmd
}

// register adds shared flags to the root command
func (f *rootFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", config.DefaultPath, "config file path")
	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging attaches a zerolog logger to ctx. Structured logs are only
// written with --debug; the console logger covers normal output.
func (f *rootFlags) setupLogging(ctx context.Context, w io.Writer) context.Context {
	level := zerolog.Disabled
	if f.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
