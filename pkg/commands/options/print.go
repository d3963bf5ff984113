package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/printers"
)

// PrintOptions
type PrintOptions struct {
	Width   int
	All     bool
	ShowPos bool
}

func AddPrintArgs(cmd *cobra.Command, o *PrintOptions) {
	cmd.Flags().IntVarP(&o.Width, "width", "w", 0,
		"Truncate headings to this many columns.")
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Show nodes inside closed folds.")
	cmd.Flags().BoolVarP(&o.ShowPos, "show-pos", "k", false,
		"Show the tree position of every node.")
}

func (o *PrintOptions) Pretty() printers.PrettyPrint {
	return printers.PrettyPrint{Width: o.Width, All: o.All, ShowPos: o.ShowPos}
}
