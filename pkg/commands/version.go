package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set with -ldflags "-X tableflip.dev/outliner/pkg/commands.version=..." on release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	var short bool
	format := "yaml"

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the outliner build version.",
		Example: `
outliner version
outliner version --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output.JSON {
				format = "json"
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, version, commit, date, format))
			return err
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
