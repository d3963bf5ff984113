package edit

import (
	"fmt"
	"strings"

	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

var (
	markFlag    = string(glyph.Marked.Byte())
	openedFlag  = string(glyph.Opened.Byte())
	currentFlag = string(glyph.Current.Byte())
)

func unsupported(a markup.Adapter) error {
	return fmt.Errorf("%w: %s headlines carry no flags", outline.ErrUnsupported, a.Name())
}

func (e *Engine) markRange(start, end int) (int, int, error) {
	if end < start {
		start, end = end, start
	}
	if start < 2 || end > e.Outline.Len() {
		return 0, 0, fmt.Errorf("%w: nodes %d-%d", outline.ErrInvalidSelection, start, end)
	}
	return start, end, nil
}

// Mark flags start..end as marked. Nodes already marked are left alone. It
// returns the number of nodes changed.
func (e *Engine) Mark(start, end int) (int, error) {
	return e.setMarked(start, end, true)
}

// Unmark clears the mark of start..end, removing repeated mark flags too.
func (e *Engine) Unmark(start, end int) (int, error) {
	return e.setMarked(start, end, false)
}

func (e *Engine) setMarked(start, end int, marked bool) (int, error) {
	f, err := e.flagger()
	if err != nil {
		return 0, err
	}
	ln1, ln2, err := e.markRange(start, end)
	if err != nil {
		return 0, err
	}
	o := e.Outline
	m := e.mutate()
	n := 0
	for p := ln1; p <= ln2; p++ {
		if glyph.IsMarked(o.Tree(p)) == marked {
			continue
		}
		m.SetTree(p, glyph.SetMarked(o.Tree(p), marked))
		n++

		bln := o.Node(p)
		line := e.Doc.Line(bln)
		at, _, ok := f.MarkerSpan(line)
		if !ok {
			continue
		}
		if marked {
			line = line[:at] + markFlag + line[at:]
		} else {
			line = line[:at] + strings.TrimLeft(line[at:], markFlag)
		}
		e.Doc.SetLine(bln, line)
	}
	return n, e.verify()
}

// MarkSelected records pos as the startup node: its headline gets the
// current flag and every other headline loses it, together with any mark or
// expanded flags trailing a stale one. Position 1 only clears.
func (e *Engine) MarkSelected(pos int) error {
	f, err := e.flagger()
	if err != nil {
		return err
	}
	o := e.Outline
	if pos < 1 || pos > o.Len() {
		return fmt.Errorf("%w: node %d", outline.ErrInvalidSelection, pos)
	}
	cur, opened := glyph.Current.Byte(), glyph.Opened.Byte()
	strip := currentFlag + markFlag + openedFlag

	selected := 0
	if pos > 1 {
		selected = o.Node(pos)
	}
	for p := 2; p <= o.Len(); p++ {
		bln := o.Node(p)
		if bln == selected {
			continue
		}
		line := e.Doc.Line(bln)
		_, end, ok := f.MarkerSpan(line)
		if !ok || end >= len(line) {
			continue
		}
		switch {
		case line[end] == cur:
			e.Doc.SetLine(bln, line[:end]+strings.TrimLeft(line[end:], strip))
		case line[end] == opened && end+1 < len(line) && line[end+1] == cur:
			e.Doc.SetLine(bln, line[:end+1]+strings.TrimLeft(line[end+1:], strip))
		}
	}
	if selected == 0 {
		return nil
	}

	line := e.Doc.Line(selected)
	_, end, ok := f.MarkerSpan(line)
	if !ok {
		return nil
	}
	rest := line[end:]
	switch {
	case strings.HasPrefix(rest, currentFlag),
		len(rest) > 1 && rest[0] == opened && rest[1] == cur:
		return nil
	case strings.HasPrefix(rest, openedFlag):
		end++
	}
	e.Doc.SetLine(selected, line[:end]+currentFlag+line[end:])
	return nil
}
