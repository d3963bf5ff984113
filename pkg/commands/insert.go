package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/insert"
)

func addInsert(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}
	po := &options.PrintOptions{}
	child := false

	cmd := &cobra.Command{
		Use:     "insert <document>",
		Aliases: []string{"add", "new"},
		Short:   "Insert a new headline after a node.",
		Long: options.Wrap80(`Insert a new headline after the selected node, skipping its
subtree, or as its first child with --child. Without --node the current
node of the document is used; node 1 inserts at the top.`),
		Example: `
outliner insert notes.txt --node 3
outliner insert notes.txt --line 42 --child
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := insert.Insert{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				Node:    no.Node,
				Line:    no.Line,
				Child:   child,
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
	cmd.Flags().BoolVarP(&child, "child", "c", false, "Insert as the first child of the node.")
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addPaste(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}
	po := &options.PrintOptions{}

	cmd := &cobra.Command{
		Use:   "paste <document>",
		Short: "Paste the clipboard register after a node.",
		Example: `
outliner cut notes.txt --node 4
outliner paste notes.txt --node 9
outliner paste other.txt --register work
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := insert.Insert{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				Node:    no.Node,
				Line:    no.Line,
				Paste:   true,
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
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}
