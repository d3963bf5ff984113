// Package edit applies structural edits to a document and its outline. Each
// operation validates before it touches anything and then updates the
// document, the tree lines and the node and level index together.
package edit

import (
	"math/rand/v2"

	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/host"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

// Engine edits one document/tree pair.
type Engine struct {
	Outline *outline.Outline
	Doc     buffer.DocumentStore
	// Tree is the surface the outline is drawn on. It may be nil, in which
	// case no node counts as folded.
	Tree      buffer.RenderSurface
	Markup    markup.Adapter
	Clipboard host.ClipboardStore
	// Rand drives shuffle sorts. The global source is used when nil.
	Rand *rand.Rand
	// Verify rebuilds the outline after every edit and reports drift.
	Verify bool
}

// New returns an engine editing doc through o.
func New(o *outline.Outline, doc buffer.DocumentStore, tree buffer.RenderSurface, a markup.Adapter, clip host.ClipboardStore) *Engine {
	return &Engine{
		Outline:   o,
		Doc:       doc,
		Tree:      tree,
		Markup:    a,
		Clipboard: clip,
	}
}

// InsertResult says where a new headline went.
type InsertResult struct {
	Pos      int
	BodyLine int
	// Column is where the cursor goes on BodyLine.
	Column int
}

// PasteResult spans the pasted nodes.
type PasteResult struct {
	First, Last int
	BodyLine    int
	Warnings    []outline.Warning
}

// CopyResult is the text put on the clipboard and where it came from.
type CopyResult struct {
	Text                string
	BodyFirst, BodyLast int
}

// CutResult adds the node selected after the cut.
type CutResult struct {
	CopyResult
	Pos int
}

// MoveResult spans the nodes moved by up, down, right or left.
type MoveResult struct {
	First, Last int
	LevelDelta  int
	BodyLine    int
}

func (e *Engine) mutate() *outline.Mutation {
	return e.Outline.Mutate(e.Tree)
}

func (e *Engine) folded(pos int) bool {
	return e.Tree != nil && e.Tree.FoldClosed(pos) != -1
}

// foldStart returns the first line of the closed fold hiding pos, or pos.
func (e *Engine) foldStart(pos int) int {
	if e.Tree == nil {
		return pos
	}
	if f := e.Tree.FoldClosed(pos); f != -1 {
		return f
	}
	return pos
}

// bodyEnd is the last document line of pos, ignoring descendants.
func (e *Engine) bodyEnd(pos int) int {
	return e.Outline.BodyEnd(pos, e.Doc.Len())
}

// target returns the node new content is placed after and its level. A
// folded node is skipped past as a whole; an open node with children gets
// the content as its first child.
func (e *Engine) target(pos int, asChild bool) (int, int) {
	o := e.Outline
	lev := o.Level(pos)
	switch {
	case pos == 1:
		lev = 1
	case asChild:
		lev++
	case pos == o.Len():
	case lev < o.Level(pos+1):
		if e.folded(pos) {
			pos += o.Subnodes(pos)
		} else {
			lev++
		}
	}
	return pos, lev
}

// tooDeep reports whether the markup has no headline at level.
func (e *Engine) tooDeep(level int) bool {
	l, ok := e.Markup.(markup.Leveler)
	return ok && level > l.MaxLevel()
}

// fits reports whether ln1..ln2 can move delta levels deeper.
func (e *Engine) fits(ln1, ln2, delta int) bool {
	deepest := 0
	for p := ln1; p <= ln2; p++ {
		deepest = max(deepest, e.Outline.Level(p))
	}
	return !e.tooDeep(deepest + delta)
}

func (e *Engine) normalize(ed markup.Edit) {
	if n, ok := e.Markup.(markup.Normalizer); ok {
		n.Normalize(e.Doc, e.Outline, ed)
	}
}

func (e *Engine) verify() error {
	if !e.Verify {
		return nil
	}
	drawn := e.Outline.TreeLines()
	if e.Tree != nil {
		drawn = e.Tree.Lines()
	}
	return outline.Verify(e.Outline, drawn, e.Doc.Lines(), e.Markup)
}

func (e *Engine) flagger() (markup.Flagger, error) {
	f, ok := e.Markup.(markup.Flagger)
	if !ok {
		return nil, unsupported(e.Markup)
	}
	return f, nil
}
