package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/verify"
)

func addVerify(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}

	cmd := &cobra.Command{
		Use:   "verify <document>",
		Short: "Check that the outline of a document indexes cleanly.",
		Example: `
outliner verify notes.txt
outliner verify notes.txt --node 5
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := verify.Verify{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				Node:    no.Node,
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
