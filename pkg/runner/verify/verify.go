// Package verify provides the runner that checks an outline against a
// fresh index of its document.
package verify

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

// Verify rebuilds the outline of Path and, when Node is set, runs a
// move right and left round trip on it before checking for drift. The
// document is not written.
type Verify struct {
	Service *app.Service
	Path    string
	Markup  string
	Node    int
	Printer printers.PrettyPrint
}

func (n *Verify) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not verify, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	sess.SetVerify(true)
	if n.Node > 1 {
		if _, err := sess.Right(n.Node, n.Node); err == nil {
			if _, err := sess.Left(n.Node, n.Node); err != nil {
				return err
			}
		}
	}
	if err := sess.Verify(); err != nil {
		return err
	}
	n.Printer.TitleWithCount(fmt.Sprintf("%s: in sync", n.Path), sess.Outline().Len()-1, "node", "nodes")
	return nil
}
