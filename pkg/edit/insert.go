package edit

import (
	"fmt"
	"strings"

	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

// Insert adds a new headline after pos, or as its first child when asChild
// is set, and makes it the current node.
func (e *Engine) Insert(pos int, asChild bool) (InsertResult, error) {
	o := e.Outline
	if pos < 1 || pos > o.Len() {
		return InsertResult{}, fmt.Errorf("%w: node %d", outline.ErrInvalidSelection, pos)
	}
	ln, lev := e.target(pos, asChild)
	if e.tooDeep(lev) {
		return InsertResult{}, fmt.Errorf("%w: no level %d headline in %s", outline.ErrInvalidSelection, lev, e.Markup.Name())
	}

	after := e.Doc.Len()
	if ln < o.Len() {
		after = o.Node(ln+1) - 1
	}
	prev := ""
	if after >= 1 {
		prev = e.Doc.Line(after)
	}
	nh := e.Markup.NewHeadline(lev, prev)

	m := e.mutate()
	m.Unselect()
	e.Doc.Splice(after+1, after, nh.Lines)
	m.ShiftNodes(ln+1, o.Len(), len(nh.Lines))
	m.Insert(ln, outline.Segment{
		Tree:   []string{glyph.TreeLine(lev, false, nh.Heading)},
		Nodes:  []int{after + 1 + nh.Anchor},
		Levels: []int{lev},
	})
	e.normalize(markup.Edit{Kind: markup.EditInsert})
	m.Select(ln + 1)

	return InsertResult{Pos: ln + 1, BodyLine: o.Node(ln + 1), Column: nh.Column}, e.verify()
}

// Paste inserts the clipboard after pos the way Insert places a new node,
// shifting the pasted headlines to the target level.
func (e *Engine) Paste(pos int) (PasteResult, error) {
	o := e.Outline
	if pos < 1 || pos > o.Len() {
		return PasteResult{}, fmt.Errorf("%w: node %d", outline.ErrInvalidSelection, pos)
	}
	text := ""
	if e.Clipboard != nil {
		var err error
		if text, err = e.Clipboard.Read(); err != nil {
			return PasteResult{}, fmt.Errorf("reading clipboard: %w", err)
		}
	}
	if text == "" {
		return PasteResult{}, outline.ErrEmptyClipboard
	}

	blines := strings.Split(text, "\n")
	hs := e.Markup.Scan(blines, false)
	if len(hs) == 0 || hs[0].Line != 1 {
		return PasteResult{}, fmt.Errorf("%w: no headline on first line", outline.ErrInvalidClipboard)
	}
	var warnings []outline.Warning
	prev, deepest := hs[0].Level, 0
	for _, h := range hs {
		deepest = max(deepest, h.Level)
		if h.Level < hs[0].Level {
			return PasteResult{}, fmt.Errorf("%w: line %d is above the first headline", outline.ErrInvalidClipboard, h.Line)
		}
		if h.Level-prev > 1 {
			warnings = append(warnings, outline.MalformedClipboard(h.Line))
		}
		prev = h.Level
	}

	ln, lev := e.target(pos, false)
	delta := lev - hs[0].Level
	if e.tooDeep(deepest + delta) {
		return PasteResult{}, fmt.Errorf("%w: pasted nodes would be nested too deep", outline.ErrInvalidSelection)
	}
	after := e.Doc.Len()
	if ln < o.Len() {
		after = o.Node(ln+1) - 1
	}
	seg := outline.Segment{
		Tree:   make([]string, 0, len(hs)),
		Nodes:  make([]int, 0, len(hs)),
		Levels: make([]int, 0, len(hs)),
	}
	for _, h := range hs {
		if delta != 0 {
			blines[h.Line-1] = e.Markup.ChangeLevel(blines[h.Line-1], delta)
		}
		seg.Tree = append(seg.Tree, glyph.TreeLine(h.Level+delta, h.Marked, h.Heading))
		seg.Nodes = append(seg.Nodes, h.Line+after)
		seg.Levels = append(seg.Levels, h.Level+delta)
	}

	m := e.mutate()
	m.Unselect()
	e.Doc.Splice(after+1, after, blines)
	m.ShiftNodes(ln+1, o.Len(), len(blines))
	m.Insert(ln, seg)
	first, last := ln+1, ln+len(hs)
	e.normalize(markup.Edit{
		Kind:       markup.EditPaste,
		LevelDelta: delta,
		First:      first,
		Last:       last,
		BodyFirst:  after + 1,
		BodyLast:   after + len(blines),
	})
	m.Select(first)

	return PasteResult{First: first, Last: last, BodyLine: o.Node(first), Warnings: warnings}, e.verify()
}
