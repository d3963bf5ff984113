// Package grep provides the runner that finds nodes by regular expression.
package grep

import (
	"context"
	"errors"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

// Grep lists nodes whose lines match every pattern in And and none in Not.
type Grep struct {
	Service *app.Service
	Path    string
	Markup  string
	And     []string
	Not     []string
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Grep) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not grep, no service")
	}
	if len(n.And) == 0 && len(n.Not) == 0 {
		return errors.New("grep needs at least one pattern")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	matches, err := sess.Grep(n.And, n.Not)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(matches)
	}
	n.Printer.Grep(sess.Outline(), matches)
	return nil
}
