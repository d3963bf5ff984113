// Package fold provides the runner that saves, restores and cleans up the
// fold flags of a document.
package fold

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

type Action string

const (
	Save    Action = "save"
	Restore Action = "restore"
	Cleanup Action = "cleanup"
)

// Fold works on the fold state of From..To. Before saving, the nodes in
// Open and Close are unfolded and folded on the drawn tree.
type Fold struct {
	Service *app.Service
	Action  Action
	Path    string
	Markup  string
	From    int
	To      int
	Open    []int
	Close   []int
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Fold) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not fold, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	from, to := n.From, n.To
	if from == 0 {
		from = 2
	}
	if to == 0 {
		to = sess.Outline().Len()
	}

	changed := 0
	switch n.Action {
	case Save:
		for _, p := range n.Open {
			sess.Tree.OpenFold(p)
		}
		for _, p := range n.Close {
			sess.Tree.CloseFold(p)
		}
		err = sess.SaveFolds(from, to)
	case Restore:
		err = sess.RestoreFolds(from, to)
	case Cleanup:
		changed, err = sess.CleanupFolds()
	default:
		err = fmt.Errorf("unknown fold action %q", n.Action)
	}
	if err != nil {
		return err
	}
	if n.Action != Restore {
		if err := n.Service.Save(ctx, sess); err != nil {
			return err
		}
	}
	if n.JSON {
		return n.Printer.JSON(map[string]any{"changed": changed, "nodes": sess.Nodes()})
	}
	n.Printer.Tree(sess.Outline(), sess.Tree)
	return nil
}
