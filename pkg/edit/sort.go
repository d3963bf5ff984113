package edit

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"

	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

// SortOptions select how siblings are ordered.
type SortOptions struct {
	IgnoreCase bool
	Reverse    bool
	// Shuffle puts siblings in random order.
	Shuffle bool
	// Flip reverses the current order without sorting.
	Flip bool
	// Deep sorts the children of every node under the siblings too.
	Deep bool
}

// SortStatus is the outcome of a sort.
type SortStatus int

const (
	Sorted SortStatus = iota
	AlreadySorted
	NothingToSort
)

func (s SortStatus) String() string {
	switch s {
	case Sorted:
		return "sorted"
	case AlreadySorted:
		return "already sorted"
	case NothingToSort:
		return "nothing to sort"
	}
	return "unknown"
}

// SortResult reports what a sort did. Line is the document line the sorted
// node now starts at; the outline must be rebuilt before it is used again.
type SortResult struct {
	Status SortStatus
	// Groups counts sibling groups whose order changed.
	Groups int
	Line   int
}

type sortBlock struct {
	key        string
	start, end int
}

// Sort reorders the siblings of pos by heading. Only document lines are
// rewritten: the tree lines and the index are stale afterwards and the
// caller rebuilds them.
func (e *Engine) Sort(pos int, opts SortOptions) (SortResult, error) {
	o := e.Outline
	if !o.Valid(pos) {
		return SortResult{}, fmt.Errorf("%w: node %d", outline.ErrInvalidSelection, pos)
	}
	top := o.Siblings(pos)
	groups := [][]int{top}
	if opts.Deep {
		groups = groups[:0]
		for _, g := range o.SiblingGroups(top) {
			groups = append(groups, g.Members)
		}
		groups = append(groups, top)
	}

	// blocks come from the index as it was before any group moved
	blocks := make([][]sortBlock, len(groups))
	for i, g := range groups {
		blocks[i] = e.sortBlocks(g, opts.IgnoreCase)
	}

	res := SortResult{Status: NothingToSort, Line: o.Node(pos)}
	for _, bs := range blocks {
		if len(bs) < 2 {
			continue
		}
		if res.Status == NothingToSort {
			res.Status = AlreadySorted
		}
		order := e.order(bs, opts)
		if slices.Equal(order, identity(len(bs))) {
			continue
		}
		res.Groups++
		first, last := bs[0].start, bs[len(bs)-1].end
		var grown int
		res.Line, grown = e.rewrite(bs, order, res.Line)
		if grown != 0 {
			shiftBlocks(blocks, first, last, grown)
		}
	}
	if res.Groups > 0 {
		res.Status = Sorted
	}
	return res, nil
}

func (e *Engine) sortBlocks(group []int, fold bool) []sortBlock {
	o := e.Outline
	bs := make([]sortBlock, 0, len(group))
	for _, p := range group {
		start, end := o.SubtreeRange(p, e.Doc.Len())
		key := o.Heading(p)
		if fold {
			key = strings.ToLower(key)
		}
		bs = append(bs, sortBlock{key: key, start: start, end: end})
	}
	return bs
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// order returns block indexes in their new order.
func (e *Engine) order(bs []sortBlock, opts SortOptions) []int {
	idx := identity(len(bs))
	switch {
	case opts.Flip:
		slices.Reverse(idx)
	case opts.Shuffle:
		swap := func(i, j int) { idx[i], idx[j] = idx[j], idx[i] }
		if e.Rand != nil {
			e.Rand.Shuffle(len(idx), swap)
		} else {
			rand.Shuffle(len(idx), swap)
		}
	default:
		sort.SliceStable(idx, func(i, j int) bool {
			a, b := bs[idx[i]].key, bs[idx[j]].key
			if opts.Reverse {
				return a > b
			}
			return a < b
		})
	}
	return idx
}

// rewrite writes the blocks back in order and returns where line ended up
// and how many lines the region grew by. Adapters that normalize after edits
// need titles kept off the text above them, so a blank line is put between
// blocks that would otherwise touch.
func (e *Engine) rewrite(bs []sortBlock, order []int, line int) (int, int) {
	first, last := bs[0].start, bs[len(bs)-1].end
	_, separate := e.Markup.(markup.Normalizer)
	touching := func(lines []string) bool {
		return separate && len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) != ""
	}

	lines := make([]string, 0, last-first+2)
	moved := line
	for n, i := range order {
		b := bs[i]
		if n > 0 && touching(lines) {
			lines = append(lines, "")
		}
		if line >= b.start && line <= b.end {
			moved = first + len(lines) + line - b.start
		}
		lines = append(lines, e.Doc.Range(b.start, b.end)...)
	}
	if last < e.Doc.Len() && strings.TrimSpace(e.Doc.Line(last+1)) != "" && touching(lines) {
		lines = append(lines, "")
	}
	grown := len(lines) - (last - first + 1)
	e.Doc.Splice(first, last, lines)
	if line > last {
		moved = line + grown
	}
	return moved, grown
}

// shiftBlocks moves blocks still to be rewritten after the region first..last
// grew by delta lines. Blocks holding the region stretch; blocks below it
// slide.
func shiftBlocks(blocks [][]sortBlock, first, last, delta int) {
	for _, bs := range blocks {
		for i := range bs {
			b := &bs[i]
			switch {
			case b.start > last:
				b.start += delta
				b.end += delta
			case b.start <= first && b.end >= last:
				b.end += delta
			}
		}
	}
}
