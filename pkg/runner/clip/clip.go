// Package clip provides the runner that cuts or copies nodes to the
// clipboard.
package clip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

type Op string

const (
	Cut  Op = "cut"
	Copy Op = "copy"
)

// Clip copies the nodes Node..End with their subtrees to the clipboard and,
// for Cut, removes them from the document.
type Clip struct {
	Service *app.Service
	Op      Op
	Path    string
	Markup  string
	Node    int
	End     int
	Line    int
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Clip) Do(ctx context.Context) error {
	if n.Service == nil {
		return fmt.Errorf("can not %s, no service", n.Op)
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

	switch n.Op {
	case Copy:
		res, err := sess.Copy(start, end)
		if err != nil {
			return err
		}
		if n.JSON {
			return n.Printer.JSON(res)
		}
		n.Printer.Lines(res.BodyFirst, strings.Split(res.Text, "\n"))
		return nil

	case Cut:
		res, err := sess.Cut(start, end)
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
	return errors.New("unknown clipboard operation " + string(n.Op))
}
