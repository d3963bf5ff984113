// Package move provides the runner that moves nodes within a document.
package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/edit"
	"tableflip.dev/outliner/pkg/printers"
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Right Direction = "right"
	Left  Direction = "left"
)

// Move moves the nodes Node..End, subtrees included, one step in
// Direction.
type Move struct {
	Service   *app.Service
	Direction Direction
	Path      string
	Markup    string
	Node      int
	End       int
	Line      int
	JSON      bool
	Printer   printers.PrettyPrint
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
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

	var op func(int, int) (edit.MoveResult, error)
	switch n.Direction {
	case Up:
		op = sess.MoveUp
	case Down:
		op = sess.MoveDown
	case Right:
		op = sess.Right
	case Left:
		op = sess.Left
	default:
		return fmt.Errorf("unknown direction %q", n.Direction)
	}

	res, err := op(start, end)
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
