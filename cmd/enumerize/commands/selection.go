package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/operation"
)

// NewSelectionCmd creates the command that enumerizes a selected range
func NewSelectionCmd(root *opts.RootOpts) *cobra.Command {
	c := newEnumerizeCmd(operation.ModeSelection)

	cmd := &cobra.Command{
		Use:   "selection [file]",
		Short: "Replace a selected range with an enum built from its lines",
		Long: `Selection works like document but targets the range given with --selection.
When the selection is empty it falls back to the whole document and says so.`,
		Example: `  enumerize selection colors.ts --selection 4-9
  enumerize selection colors.ts -s 4:1-9:12 --name Color --keys hex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, root, args)
		},
	}
	c.register(cmd)

	return cmd
}
