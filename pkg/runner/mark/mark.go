// Package mark provides the runner that sets and clears node flags.
package mark

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

type Action string

const (
	Set   Action = "mark"
	Clear Action = "unmark"
	// Select records the node as the one selected when the outline is next
	// opened.
	Select Action = "select"
)

// Mark sets or clears the mark flag of Node..End, or moves the startup
// flag to Node.
type Mark struct {
	Service *app.Service
	Action  Action
	Path    string
	Markup  string
	Node    int
	End     int
	Line    int
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Mark) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not mark, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	start := sess.Target(n.Node, n.Line)
	end := n.End
	if end == 0 {
		end = start
	}

	changed := 0
	switch n.Action {
	case Set:
		changed, err = sess.Mark(start, end)
	case Clear:
		changed, err = sess.Unmark(start, end)
	case Select:
		err = sess.MarkSelected(start)
		changed = 1
	default:
		err = fmt.Errorf("unknown action %q", n.Action)
	}
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx, sess); err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(map[string]int{"changed": changed})
	}
	n.Printer.Tree(sess.Outline(), sess.Tree)
	return nil
}
