package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	po := &options.PrintOptions{}

	cmd := &cobra.Command{
		Use:   "watch <document>",
		Short: "Follow a document and print the tree lines that change on every save.",
		Example: `
outliner watch notes.txt
`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			ctx, stop := signal.NotifyContext(ctxOrBackground(cmd), os.Interrupt)
			defer stop()

			s := watch.Watch{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				Printer: po.Pretty(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddPrintArgs(cmd, po)
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func ctxOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
