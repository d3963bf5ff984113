// Package unl provides the runner that prints the headline path of a node.
package unl

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

type UNL struct {
	Service *app.Service
	Path    string
	Markup  string
	Node    int
	Line    int
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *UNL) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not resolve, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	pos := sess.Target(n.Node, n.Line)
	if pos > sess.Outline().Len() {
		return fmt.Errorf("no node %d in %s", pos, n.Path)
	}
	if n.JSON {
		return n.Printer.JSON(map[string]any{
			"pos":  pos,
			"path": sess.Outline().UNL(pos),
		})
	}
	n.Printer.Title(sess.UNL(pos))
	return nil
}
