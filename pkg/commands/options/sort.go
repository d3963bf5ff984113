package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/edit"
)

// SortOptions
type SortOptions struct {
	edit.SortOptions
}

func AddSortArgs(cmd *cobra.Command, o *SortOptions) {
	cmd.Flags().BoolVarP(&o.IgnoreCase, "ignore-case", "i", false,
		"Compare headings without regard to case.")
	cmd.Flags().BoolVarP(&o.Reverse, "reverse", "R", false,
		"Sort in descending order.")
	cmd.Flags().BoolVar(&o.Shuffle, "shuffle", false,
		"Put siblings in random order.")
	cmd.Flags().BoolVar(&o.Flip, "flip", false,
		"Reverse the current order of siblings.")
	cmd.Flags().BoolVarP(&o.Deep, "deep", "d", false,
		"Also sort the children of every sibling.")
}
