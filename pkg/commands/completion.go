package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/markup"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion scripts.",
		Long: `To load completions in the current bash session run

. <(outliner completion)

To load them for every session add the same line to ~/.bashrc. For zsh or fish
pass the shell name and source the output the same way.
`,
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			w := cmd.OutOrStdout()
			switch shell {
			case "zsh":
				return topLevel.GenZshCompletion(w)
			case "fish":
				return topLevel.GenFishCompletion(w, true)
			case "bash":
				return topLevel.GenBashCompletion(w)
			}
			return fmt.Errorf("unsupported shell %q", shell)
		},
	}

	topLevel.AddCommand(cmd)
}

// markupCompletions offers the registered markup names for --markup.
func markupCompletions(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return markup.NewRegistry().Names(), cobra.ShellCompDirectiveNoFileComp
}

func registerMarkupCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("markup", markupCompletions)
}
