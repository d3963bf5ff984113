// Package report provides the runner that lists the marked nodes of a
// document.
package report

import (
	"context"
	"errors"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
)

type Report struct {
	Service *app.Service
	Path    string
	Markup  string
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	res := sess.Report()
	if n.JSON {
		return n.Printer.JSON(res)
	}
	n.Printer.Report(sess.Outline().Heading(1), res)
	return nil
}
