package options

import (
	"github.com/spf13/cobra"
)

// NodeOptions select the nodes a command works on. Node 0 means the
// current node of the document.
type NodeOptions struct {
	Node int
	End  int
	// Line selects the node containing a body line instead.
	Line int
}

func AddNodeArgs(cmd *cobra.Command, o *NodeOptions) {
	cmd.Flags().IntVarP(&o.Node, "node", "n", 0,
		"Tree position of the node, 2 being the first headline.")
	cmd.Flags().IntVarP(&o.Line, "line", "l", 0,
		"Select the node containing this document line.")
}

func AddRangeArgs(cmd *cobra.Command, o *NodeOptions) {
	AddNodeArgs(cmd, o)
	cmd.Flags().IntVarP(&o.End, "end", "e", 0,
		"Last node of the range. Defaults to --node.")
}
