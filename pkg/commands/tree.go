package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/tree"
)

func addTree(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	po := &options.PrintOptions{}

	cmd := &cobra.Command{
		Use:     "tree <document>",
		Aliases: []string{"get", "show"},
		Short:   "Print the headline tree of a document.",
		Example: `
outliner tree notes.txt
outliner tree README.md --all --show-pos
outliner tree notes.txt --markup org --width 40
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := tree.Tree{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				JSON:    output.JSON,
				Printer: po.Pretty(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddPrintArgs(cmd, po)
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}
