package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	po := &options.PrintOptions{}

	cmd := &cobra.Command{
		Use:   "report <document>",
		Short: "Display marked nodes grouped by top level section",
		Long: `Report lists the marked nodes of a document under their ancestors, one
section per top level headline.

Examples:
  outliner report notes.txt
  outliner report notes.txt --json`,
		Args: options.DocumentArg(do),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := report.Report{
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
