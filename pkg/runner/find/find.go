// Package find provides the runner that ranks headings against a query.
package find

import (
	"context"
	"errors"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

type Find struct {
	Service *app.Service
	Path    string
	Markup  string
	Query   string
	// Limit caps the matches printed when positive.
	Limit   int
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Find) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not find, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	matches := sess.Find(n.Query)
	if n.Limit > 0 && len(matches) > n.Limit {
		matches = matches[:n.Limit]
	}
	if n.JSON {
		return n.Printer.JSON(matches)
	}
	n.Printer.Find(sess.Outline(), matches)
	return nil
}
