// Package watch provides the runner that follows a document on disk and
// redraws its tree on every save.
package watch

import (
	"context"
	"errors"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
	"tableflip.dev/outliner/pkg/render"
	"tableflip.dev/outliner/pkg/store"
)

// Watch prints the tree of Path, then the lines that change in it each time
// the file is saved, until ctx is done.
type Watch struct {
	Service *app.Service
	Path    string
	Markup  string
	Printer printers.PrettyPrint
	// Notify, when set, is called after every redraw.
	Notify func(store.Event, render.Patch)
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}
	sess, err := n.Service.Open(ctx, n.Path, n.Markup)
	if err != nil {
		return err
	}
	events, err := n.Service.Watch(ctx, sess)
	if err != nil {
		return err
	}
	n.Printer.Tree(sess.Outline(), sess.Tree)

	for ev := range events {
		var p render.Patch
		switch ev.Type {
		case store.EventDocumentChanged:
			if p, err = n.Service.Reload(ctx, sess); err != nil {
				sess.Sink.Error("reload failed", "path", ev.Path, "err", err)
				continue
			}
			if p.Kind == render.None {
				sess.Sink.Info("no outline change", "path", ev.Path)
			} else {
				n.Printer.Note("%s: %s redraw from line %d", ev.Type, p.Kind, p.From)
				n.Printer.Lines(p.From, p.Lines)
			}
		case store.EventDocumentRemoved:
			sess.Sink.Warn("document removed", "path", ev.Path)
		}
		if n.Notify != nil {
			n.Notify(ev, p)
		}
	}
	return nil
}
