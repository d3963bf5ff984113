package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the flags kept in headlines and the glyphs they are shown with.",
		Example: `
outliner key
outliner key --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{JSON: output.JSON}
			return output.HandleError(k.Do(ctxOrBackground(cmd)))
		},
	}

	topLevel.AddCommand(cmd)
}
