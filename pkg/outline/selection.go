package outline

import (
	"fmt"
	"sort"
)

// SelectionEnd extends a selection start..end to the end of the subtree of
// its last sibling. It returns 0 when the selection starts at the root or
// contains a node shallower than start.
func (o *Outline) SelectionEnd(start, end int) int {
	z := o.Len()
	if start <= 1 || start > z {
		return 0
	}
	lev0 := o.Level(start)
	for i := start + 1; i <= z; i++ {
		lev := o.Level(i)
		if i <= end && lev < lev0 {
			return 0
		}
		if i > end && lev <= lev0 {
			return i - 1
		}
	}
	return z
}

// Resolve orders start and end and extends the selection with
// SelectionEnd.
func (o *Outline) Resolve(start, end int) (int, int, error) {
	if end < start {
		start, end = end, start
	}
	last := o.SelectionEnd(start, end)
	if last == 0 {
		return 0, 0, fmt.Errorf("%w: nodes %d-%d", ErrInvalidSelection, start, end)
	}
	return start, last, nil
}

// Siblings returns the positions sharing pos's parent and level, pos
// included, in order.
func (o *Outline) Siblings(pos int) []int {
	if !o.Valid(pos) {
		return nil
	}
	lev := o.Level(pos)
	var before []int
	for i := pos - 1; i > 1; i-- {
		l := o.Level(i)
		if l < lev {
			break
		}
		if l == lev {
			before = append(before, i)
		}
	}
	out := make([]int, 0, len(before)+1)
	for i := len(before) - 1; i >= 0; i-- {
		out = append(out, before[i])
	}
	out = append(out, pos)
	for i := pos + 1; i <= o.Len(); i++ {
		l := o.Level(i)
		if l < lev {
			break
		}
		if l == lev {
			out = append(out, i)
		}
	}
	return out
}

// SiblingGroup is the children of Parent.
type SiblingGroup struct {
	Parent  int
	Level   int
	Members []int
}

// SiblingGroups returns the child groups of every node with children inside
// the region spanned by group, deepest first and, within a level, last
// parent first. Reordering groups in that order never moves a group that is
// still to be processed.
func (o *Outline) SiblingGroups(group []int) []SiblingGroup {
	if len(group) == 0 {
		return nil
	}
	last := group[len(group)-1]
	end := last + o.Subnodes(last)
	var out []SiblingGroup
	for p := group[0]; p <= end; p++ {
		if !o.HasChildren(p) {
			continue
		}
		out = append(out, SiblingGroup{Parent: p, Level: o.Level(p + 1), Members: o.Siblings(p + 1)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].Parent > out[j].Parent
	})
	return out
}
