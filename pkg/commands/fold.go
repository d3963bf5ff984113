package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/fold"
)

func addFold(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fold",
		Short: "Save, restore or clean up the fold flags kept in headlines.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addFoldAction(cmd, fold.Save, "Write the drawn fold state into the headlines.")
	addFoldAction(cmd, fold.Restore, "Redraw folds from the headlines.")
	addFoldAction(cmd, fold.Cleanup, "Remove expanded flags from nodes without children.")

	topLevel.AddCommand(cmd)
}

func addFoldAction(parent *cobra.Command, action fold.Action, short string) {
	do := &options.DocumentOptions{}
	po := &options.PrintOptions{}
	var (
		from, to       int
		opened, closed []int
	)

	cmd := &cobra.Command{
		Use:   string(action) + " <document>",
		Short: short,
		Args:  options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := fold.Fold{
				Service: svc,
				Action:  action,
				Path:    do.Path,
				Markup:  do.Markup,
				From:    from,
				To:      to,
				Open:    opened,
				Close:   closed,
				JSON:    output.JSON,
				Printer: po.Pretty(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddPrintArgs(cmd, po)
	if action != fold.Cleanup {
		cmd.Flags().IntVar(&from, "from", 0, "First node of the range. Defaults to the first headline.")
		cmd.Flags().IntVar(&to, "to", 0, "Last node of the range. Defaults to the last headline.")
	}
	if action == fold.Save {
		cmd.Example = `
outliner fold save notes.txt --open 3,7 --close 12
`
		cmd.Flags().IntSliceVar(&opened, "open", nil, "Nodes to unfold before saving.")
		cmd.Flags().IntSliceVar(&closed, "close", nil, "Nodes to fold before saving.")
	}
	registerMarkupCompletion(cmd)

	parent.AddCommand(cmd)
}
