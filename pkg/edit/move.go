package edit

import (
	"fmt"

	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

// block returns the document lines of ln1..ln2 with every headline moved
// delta levels.
func (e *Engine) block(ln1, ln2, delta int) []string {
	o := e.Outline
	b1 := o.Node(ln1)
	lines := e.Doc.Range(b1, e.bodyEnd(ln2))
	if delta == 0 {
		return lines
	}
	for p := ln1; p <= ln2; p++ {
		i := o.Node(p) - b1
		lines[i] = e.Markup.ChangeLevel(lines[i], delta)
	}
	return lines
}

func shift(seg outline.Segment, levels, nodes int) outline.Segment {
	for i := range seg.Nodes {
		seg.Nodes[i] += nodes
		if levels != 0 {
			seg.Levels[i] += levels
			seg.Tree[i] = glyph.ChangeLevel(seg.Tree[i], levels)
		}
	}
	return seg
}

// MoveUp moves start..end above the visible node before it. Moving onto the
// first child slot of the node above makes the range a child.
func (e *Engine) MoveUp(start, end int) (MoveResult, error) {
	o := e.Outline
	ln1, ln2, err := o.Resolve(start, end)
	if err != nil {
		return MoveResult{}, err
	}
	up1 := e.foldStart(ln1 - 1)
	if up1 <= 1 {
		return MoveResult{}, fmt.Errorf("%w: node %d is already at the top", outline.ErrCannotMove, ln1)
	}
	up2 := e.foldStart(up1 - 1)

	levNew := o.Level(up2)
	if o.Level(up2)+1 == o.Level(up1) {
		levNew = o.Level(up1)
	}
	delta := levNew - o.Level(ln1)
	if !e.fits(ln1, ln2, delta) {
		return MoveResult{}, fmt.Errorf("%w: node %d would be nested too deep", outline.ErrCannotMove, ln1)
	}

	b1, b2, bUp := o.Node(ln1), e.bodyEnd(ln2), o.Node(up1)
	lines := e.block(ln1, ln2, delta)
	n := b2 - b1 + 1

	m := e.mutate()
	m.Unselect()
	seg := shift(m.Remove(ln1, ln2), delta, bUp-b1)
	m.ShiftNodes(up1, ln1-1, n)
	m.Insert(up1-1, seg)
	e.Doc.Splice(b1, b2, nil)
	e.Doc.Splice(bUp, bUp-1, lines)

	first, last := up1, up1+ln2-ln1
	e.normalize(markup.Edit{
		Kind:       markup.EditUp,
		LevelDelta: delta,
		First:      first,
		Last:       last,
		BodyFirst:  bUp,
		BodyLast:   bUp + n - 1,
		CutPos:     ln2,
		CutLine:    b2,
	})
	m.Select(first)

	return MoveResult{First: first, Last: last, LevelDelta: delta, BodyLine: o.Node(first)}, e.verify()
}

// MoveDown moves start..end below the visible node after it. An open node
// with children receives the range as its first children.
func (e *Engine) MoveDown(start, end int) (MoveResult, error) {
	o := e.Outline
	ln1, ln2, err := o.Resolve(start, end)
	if err != nil {
		return MoveResult{}, err
	}
	z := o.Len()
	if ln2 >= z {
		return MoveResult{}, fmt.Errorf("%w: node %d is already at the bottom", outline.ErrCannotMove, ln1)
	}
	dn1 := ln2 + 1
	levNew := o.Level(dn1)
	ins := dn1
	if o.HasChildren(dn1) {
		if e.folded(dn1) {
			ins += o.Subnodes(dn1)
		} else {
			levNew++
		}
	}
	delta := levNew - o.Level(ln1)
	if !e.fits(ln1, ln2, delta) {
		return MoveResult{}, fmt.Errorf("%w: node %d would be nested too deep", outline.ErrCannotMove, ln1)
	}

	b1, b2, bIns := o.Node(ln1), e.bodyEnd(ln2), e.bodyEnd(ins)
	lines := e.block(ln1, ln2, delta)
	n := b2 - b1 + 1

	m := e.mutate()
	m.Unselect()
	seg := shift(m.Remove(ln1, ln2), delta, bIns-b2)
	count := seg.Len()
	m.ShiftNodes(ln1, ins-count, -n)
	m.Insert(ins-count, seg)
	e.Doc.Splice(bIns+1, bIns, lines)
	e.Doc.Splice(b1, b2, nil)

	first := ins + 1 - count
	last := first + count - 1
	e.normalize(markup.Edit{
		Kind:       markup.EditDown,
		LevelDelta: delta,
		First:      first,
		Last:       last,
		BodyFirst:  bIns - n + 1,
		BodyLast:   bIns,
		CutPos:     ln1 - 1,
		CutLine:    b1 - 1,
	})
	m.Select(first)

	return MoveResult{First: first, Last: last, LevelDelta: delta, BodyLine: o.Node(first)}, e.verify()
}

// Right makes start..end one level deeper. It fails when the first node is
// already a child of the node above it.
func (e *Engine) Right(start, end int) (MoveResult, error) {
	o := e.Outline
	ln1, ln2, err := o.Resolve(start, end)
	if err != nil {
		return MoveResult{}, err
	}
	if o.Level(ln1) > o.Level(ln1-1) {
		return MoveResult{}, fmt.Errorf("%w: node %d is already a child", outline.ErrCannotMove, ln1)
	}
	if !e.fits(ln1, ln2, 1) {
		return MoveResult{}, fmt.Errorf("%w: node %d would be nested too deep", outline.ErrCannotMove, ln1)
	}
	return e.shiftLevels(markup.EditRight, ln1, ln2, 1)
}

// Left makes start..end one level shallower. It fails at level 1 and when a
// sibling follows the range, which would otherwise become its child.
func (e *Engine) Left(start, end int) (MoveResult, error) {
	o := e.Outline
	ln1, ln2, err := o.Resolve(start, end)
	if err != nil {
		return MoveResult{}, err
	}
	switch {
	case o.Level(ln1) == 1:
		return MoveResult{}, fmt.Errorf("%w: node %d is at the top level", outline.ErrCannotMove, ln1)
	case ln2 < o.Len() && o.Level(ln2+1) == o.Level(ln1):
		return MoveResult{}, fmt.Errorf("%w: node %d is followed by a sibling", outline.ErrCannotMove, ln2)
	}
	return e.shiftLevels(markup.EditLeft, ln1, ln2, -1)
}

func (e *Engine) shiftLevels(kind markup.EditKind, ln1, ln2, delta int) (MoveResult, error) {
	o := e.Outline
	for p := ln1; p <= ln2; p++ {
		bln := o.Node(p)
		e.Doc.SetLine(bln, e.Markup.ChangeLevel(e.Doc.Line(bln), delta))
	}
	m := e.mutate()
	m.Unselect()
	m.ShiftLevels(ln1, ln2, delta)
	e.normalize(markup.Edit{
		Kind:       kind,
		LevelDelta: delta,
		First:      ln1,
		Last:       ln2,
		BodyFirst:  o.Node(ln1),
		BodyLast:   e.bodyEnd(ln2),
	})
	m.Select(ln1)

	return MoveResult{First: ln1, Last: ln2, LevelDelta: delta, BodyLine: o.Node(ln1)}, e.verify()
}
