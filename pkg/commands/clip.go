package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/clip"
)

func addCut(topLevel *cobra.Command) {
	addClip(topLevel, clip.Cut, "Move nodes and their subtrees to the clipboard register.")
}

func addCopy(topLevel *cobra.Command) {
	addClip(topLevel, clip.Copy, "Copy nodes and their subtrees to the clipboard register.")
}

func addClip(topLevel *cobra.Command, op clip.Op, short string) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}
	po := &options.PrintOptions{}

	cmd := &cobra.Command{
		Use:   string(op) + " <document>",
		Short: short,
		Example: `
outliner ` + string(op) + ` notes.txt --node 3
outliner ` + string(op) + ` notes.txt --node 3 --end 5 --register work
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := clip.Clip{
				Service: svc,
				Op:      op,
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
	options.AddRangeArgs(cmd, no)
	options.AddPrintArgs(cmd, po)
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}
