package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/find"
	"tableflip.dev/outliner/pkg/runner/grep"
)

func addFind(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	po := &options.PrintOptions{}
	limit := 0
	query := ""

	cmd := &cobra.Command{
		Use:   "find <document> <query>",
		Short: "Fuzzy search the headings of a document.",
		Example: `
outliner find notes.txt rlsnts
outliner find notes.txt "release notes" --limit 5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a document path and a query")
			}
			do.Path = args[0]
			query = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := find.Find{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				Query:   query,
				Limit:   limit,
				JSON:    output.JSON,
				Printer: po.Pretty(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddPrintArgs(cmd, po)
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many matches.")
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addGrep(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	po := &options.PrintOptions{}
	var and, not []string

	cmd := &cobra.Command{
		Use:   "grep <document> [pattern...]",
		Short: "List nodes whose lines match regular expressions.",
		Long: options.Wrap80(`List the nodes whose own lines match every pattern, and
none of the --not patterns. Each node is shown with the number of matching
lines, the first of them, and its headline path.`),
		Example: `
outliner grep notes.txt TODO
outliner grep notes.txt TODO urgent --not done
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a document path")
			}
			do.Path = args[0]
			and = args[1:]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service(do)
			if err != nil {
				return output.HandleError(err)
			}
			s := grep.Grep{
				Service: svc,
				Path:    do.Path,
				Markup:  do.Markup,
				And:     and,
				Not:     not,
				JSON:    output.JSON,
				Printer: po.Pretty(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddPrintArgs(cmd, po)
	cmd.Flags().StringArrayVar(&not, "not", nil, "Pattern that must not match. Repeatable.")
	registerMarkupCompletion(cmd)

	topLevel.AddCommand(cmd)
}
