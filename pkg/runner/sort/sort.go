// Package sort provides the runner that orders sibling headlines.
package sort

import (
	"context"
	"errors"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/edit"
	"tableflip.dev/outliner/pkg/printers"
)

// Sort orders the siblings of the target node.
type Sort struct {
	Service *app.Service
	Path    string
	Markup  string
	Node    int
	Line    int
	Options edit.SortOptions
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Sort) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not sort, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	res, err := sess.Sort(sess.Target(n.Node, n.Line), n.Options)
	if err != nil {
		return err
	}
	if res.Status == edit.Sorted {
		if err := n.Service.Save(ctx, sess); err != nil {
			return err
		}
	}
	if n.JSON {
		return n.Printer.JSON(map[string]any{
			"status": res.Status.String(),
			"groups": res.Groups,
			"line":   res.Line,
		})
	}
	n.Printer.Tree(sess.Outline(), sess.Tree)
	return nil
}
