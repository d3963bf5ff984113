// Package insert provides the runner that adds headlines to a document,
// either new ones or the clipboard.
package insert

import (
	"context"
	"errors"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

// Insert adds a headline after the target node, or pastes the clipboard
// there when Paste is set.
type Insert struct {
	Service *app.Service
	Path    string
	Markup  string
	Node    int
	Line    int
	// Child inserts as the first child instead of the next sibling.
	Child   bool
	Paste   bool
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Insert) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not insert, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	pos := sess.Target(n.Node, n.Line)

	var res any
	if n.Paste {
		res, err = sess.Paste(pos)
	} else {
		res, err = sess.Insert(pos, n.Child)
	}
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx, sess); err != nil {
		return err
	}

	if n.JSON {
		return n.Printer.JSON(res)
	}
	n.Printer.Tree(sess.Outline(), sess.Tree)
	return nil
}
