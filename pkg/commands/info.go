package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/runner/info"
	"tableflip.dev/outliner/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the configuration in use and the stored clipboard registers.",
		Example: `
outliner info
OUTLINER_CLIPBOARD=system outliner info --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			n := info.Info{Config: cfg, JSON: output.JSON}
			return output.HandleError(n.Do(ctxOrBackground(cmd)))
		},
	}

	topLevel.AddCommand(cmd)
}
