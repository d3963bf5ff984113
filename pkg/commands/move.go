package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/move"
)

func addMoves(topLevel *cobra.Command) {
	addMove(topLevel, move.Up, []string{"u"}, "Move nodes above their previous sibling.")
	addMove(topLevel, move.Down, []string{"d"}, "Move nodes below their next sibling.")
	addMove(topLevel, move.Right, []string{"demote", "indent"}, "Make nodes children of their previous sibling.")
	addMove(topLevel, move.Left, []string{"promote", "dedent"}, "Make nodes siblings of their parent.")
}

func addMove(topLevel *cobra.Command, dir move.Direction, aliases []string, short string) {
	do := &options.DocumentOptions{}
	no := &options.NodeOptions{}
	po := &options.PrintOptions{}

	cmd := &cobra.Command{
		Use:     string(dir) + " <document>",
		Aliases: aliases,
		Short:   short,
		Example: `
outliner ` + string(dir) + ` notes.txt --node 4
outliner ` + string(dir) + ` notes.txt --node 4 --end 6
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := move.Move{
				Service:   svc,
				Direction: dir,
				Path:      do.Path,
				Markup:    do.Markup,
				Node:      no.Node,
				End:       no.End,
				Line:      no.Line,
				JSON:      output.JSON,
				Printer:   po.Pretty(),
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
