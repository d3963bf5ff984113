package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	sorter "tableflip.dev/outliner/pkg/runner/sort"
)

func addSort(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}
	po := &options.PrintOptions{}
	so := &options.SortOptions{}

	cmd := &cobra.Command{
		Use:   "sort <document>",
		Short: "Sort a node and its siblings by heading.",
		Example: `
outliner sort notes.txt --node 3
outliner sort notes.txt --node 3 --ignore-case --deep
outliner sort notes.txt --node 3 --shuffle
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := sorter.Sort{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				Node:    no.Node,
				Line:    no.Line,
				Options: so.SortOptions,
				JSON:    output.JSON,
				Printer: po.Pretty(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddNodeArgs(cmd, no)
	options.AddPrintArgs(cmd, po)
	options.AddSortArgs(cmd, so)
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}
