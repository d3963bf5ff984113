package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/mark"
)

func addMark(topLevel *cobra.Command) {
	addMarkAction(topLevel, mark.Set, []string{"x"}, "Set the mark flag of nodes.")
}

func addUnmark(topLevel *cobra.Command) {
	addMarkAction(topLevel, mark.Clear, nil, "Clear the mark flag of nodes.")
}

func addSelect(topLevel *cobra.Command) {
	addMarkAction(topLevel, mark.Select, []string{"startup"},
		"Make a node the one selected when the document is opened.")
}

func addMarkAction(topLevel *cobra.Command, action mark.Action, aliases []string, short string) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}
	po := &options.PrintOptions{}

	cmd := &cobra.Command{
		Use:     string(action) + " <document>",
		Aliases: aliases,
		Short:   short,
		Example: `
outliner ` + string(action) + ` notes.txt --node 4
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := mark.Mark{
				Service: svc,
				Action:  action,
				Path:    do.Path,
				Markup:  do.Markup,
				Node:    no.Node,
				End:     no.End,
				Line:    no.Line,
				JSON:    output.JSON,
				Printer: po.Pretty(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	if action == mark.Select {
		options.AddNodeArgs(cmd, no)
	} else {
		options.AddRangeArgs(cmd, no)
	}
	options.AddPrintArgs(cmd, po)
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}
