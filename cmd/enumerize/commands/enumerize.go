package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/document"
	"github.com/walteh/enumerize/pkg/log"
	"github.com/walteh/enumerize/pkg/operation"
	"github.com/walteh/enumerize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// enumerizeCmd holds the flags of the document and selection commands
type enumerizeCmd struct {
	generateFlags
	selection string
	clipboard bool
	mode      operation.Mode
}

func newEnumerizeCmd(mode operation.Mode) *enumerizeCmd {
	return &enumerizeCmd{mode: mode}
}

func (c *enumerizeCmd) register(cmd *cobra.Command) {
	c.generateFlags.register(cmd)
	cmd.Flags().StringVarP(&c.selection, "selection", "s", "", "selected range, e.g. 3:1-5:10 or 3-5 (empty for the whole document)")
	cmd.Flags().BoolVar(&c.clipboard, "clipboard", false, "use the clipboard as the document")
}

// job builds the single job for the file argument or the clipboard
func (c *enumerizeCmd) job(cmd *cobra.Command, root *opts.RootOpts, args []string) (operation.Job, error) {
	if c.clipboard == (len(args) == 1) {
		return operation.Job{}, errors.Errorf("give exactly one of a file argument or --clipboard")
	}

	selection, err := text.ParseRange(c.selection)
	if err != nil {
		return operation.Job{}, errors.Errorf("--selection: %w", err)
	}

	if c.clipboard {
		return operation.Job{
			Name: "clipboard",
			Mode: c.mode,
			Open: func(ctx context.Context) (document.Document, error) {
				return document.ReadClipboard(ctx, selection)
			},
		}, nil
	}

	path := args[0]
	fileOpts := document.FileOptions{
		Selection: selection,
		Backup:    c.wantBackup(cmd, root.Config),
	}
	return operation.Job{
		Name: path,
		Mode: c.mode,
		Open: func(ctx context.Context) (document.Document, error) {
			return document.OpenFile(ctx, path, fileOpts)
		},
	}, nil
}

func (c *enumerizeCmd) run(cmd *cobra.Command, root *opts.RootOpts, args []string) error {
	ctx := zerolog.Ctx(cmd.Context()).With().Str("command", cmd.Name()).Logger().WithContext(cmd.Context())
	console := log.FromContext(ctx)

	job, err := c.job(cmd, root, args)
	if err != nil {
		return err
	}

	job.Prompter, err = c.prompter(cmd, root)
	if err != nil {
		return err
	}

	base, err := c.options(cmd, root.Config)
	if err != nil {
		return err
	}
	base.Notifier = console

	outcomes, err := operation.NewRunner(base, 1).Run(ctx, job)
	if err != nil {
		return err
	}

	outcome := outcomes[0]
	if c.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), outcome.Result.Output)
		return nil
	}
	if !c.clipboard && outcome.Applied && c.wantBackup(cmd, root.Config) {
		console.Infof("Backup written to %s.bak", job.Name)
	}
	return nil
}
