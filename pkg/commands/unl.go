package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/unl"
)

func addUNL(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}

	cmd := &cobra.Command{
		Use:   "unl <document>",
		Short: "Print the headline path of a node.",
		Example: `
outliner unl notes.txt --line 120
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := unl.UNL{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				Node:    no.Node,
				Line:    no.Line,
				JSON:    output.JSON,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddNodeArgs(cmd, no)
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}
