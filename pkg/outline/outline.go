// Package outline indexes a document into parallel tree lines, anchor lines
// and levels, answers structural questions about it and applies splices to
// all three sequences at once.
package outline

import (
	"sort"

	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/markup"
)

// Outline is the index of one document. Positions are 1-based; position 1 is
// the synthetic root anchored at line 1 with level 1.
type Outline struct {
	Name string

	tree    []string
	nodes   []int
	levels  []int
	current int
}

var _ markup.NodeIndex = (*Outline)(nil)

// Build indexes lines with a. The current-node status is stamped on
// position current, clamped to the outline.
func Build(name string, lines []string, a markup.Adapter, current int) *Outline {
	return build(name, lines, a, current, true)
}

func build(name string, lines []string, a markup.Adapter, current int, persist bool) *Outline {
	hs := a.Scan(lines, persist)
	o := &Outline{
		Name:   name,
		tree:   make([]string, 0, len(hs)+1),
		nodes:  make([]int, 0, len(hs)+1),
		levels: make([]int, 0, len(hs)+1),
	}
	o.tree = append(o.tree, glyph.RootLine(name))
	o.nodes = append(o.nodes, 1)
	o.levels = append(o.levels, 1)
	for _, h := range hs {
		o.tree = append(o.tree, glyph.TreeLine(h.Level, h.Marked, h.Heading))
		o.nodes = append(o.nodes, h.Line)
		o.levels = append(o.levels, h.Level)
	}
	o.current = min(max(current, 1), len(o.tree))
	o.tree[o.current-1] = glyph.Stamp(o.tree[o.current-1], true)
	return o
}

// Len is the number of positions, root included.
func (o *Outline) Len() int { return len(o.nodes) }

// Tree returns the tree line at pos.
func (o *Outline) Tree(pos int) string { return o.tree[pos-1] }

// Node returns the anchor line of pos.
func (o *Outline) Node(pos int) int { return o.nodes[pos-1] }

// Level returns the level of pos.
func (o *Outline) Level(pos int) int { return o.levels[pos-1] }

// Heading returns the heading text of pos.
func (o *Outline) Heading(pos int) string { return glyph.Heading(o.tree[pos-1]) }

// Current returns the position of the current node.
func (o *Outline) Current() int { return o.current }

// TreeLines returns a copy of the tree lines.
func (o *Outline) TreeLines() []string { return append([]string(nil), o.tree...) }

// Nodes returns a copy of the anchor lines.
func (o *Outline) Nodes() []int { return append([]int(nil), o.nodes...) }

// Levels returns a copy of the levels.
func (o *Outline) Levels() []int { return append([]int(nil), o.levels...) }

// Valid reports whether pos names a node other than the root.
func (o *Outline) Valid(pos int) bool { return pos > 1 && pos <= len(o.nodes) }

// CurrentIndex returns the position of the node containing document line
// line: the last node anchored at or before it, or the root.
func (o *Outline) CurrentIndex(line int) int {
	i := sort.Search(len(o.nodes), func(i int) bool { return o.nodes[i] > line })
	return max(i, 1)
}

// Select moves the current-node status to pos.
func (o *Outline) Select(pos int) {
	pos = min(max(pos, 1), len(o.tree))
	o.tree[o.current-1] = glyph.Stamp(o.tree[o.current-1], false)
	o.current = pos
	o.tree[pos-1] = glyph.Stamp(o.tree[pos-1], true)
}

func (o *Outline) SetNode(pos, line int) { o.nodes[pos-1] = line }

// ShiftNodes adds delta to the anchors of positions from..Len.
func (o *Outline) ShiftNodes(from, delta int) {
	for i := max(from, 1); i <= len(o.nodes); i++ {
		o.nodes[i-1] += delta
	}
}
