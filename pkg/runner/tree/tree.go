// Package tree provides the runner that prints the outline of a document.
package tree

import (
	"context"
	"errors"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

// Tree prints the outline of Path.
type Tree struct {
	Service *app.Service
	Path    string
	Markup  string
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Tree) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not print tree, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(sess.Nodes())
	}
	n.Printer.Tree(sess.Outline(), sess.Tree)
	return nil
}
