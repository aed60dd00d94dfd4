package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/operation"
)

// NewDocumentCmd creates the command that enumerizes a whole document
func NewDocumentCmd(root *opts.RootOpts) *cobra.Command {
	c := newEnumerizeCmd(operation.ModeDocument)

	cmd := &cobra.Command{
		Use:   "document [file]",
		Short: "Replace a document with an enum built from its lines",
		Long: `Document turns every non-blank line of a file (or the clipboard) into a
member of a generated enum, followed by a data table when data keys are given.
It will:
1. Prompt for the enum name, the data keys and the sort order
2. Trim the lines and drop blank ones
3. Render the enum and the data table
4. Replace the document (or --selection, when given) in a single write`,
		Example: `  enumerize document colors.txt
  enumerize document colors.txt --name Color --keys hex,rgb --sort asc
  enumerize document --clipboard --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, root, args)
		},
	}
	c.register(cmd)

	return cmd
}
