package outline

import (
	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/glyph"
)

// Segment is a run of consecutive nodes lifted out of, or about to be put
// into, an outline.
type Segment struct {
	Tree   []string
	Nodes  []int
	Levels []int
}

func (s Segment) Len() int { return len(s.Nodes) }

// Mutation splices the tree lines, anchors and levels of an outline
// together, mirroring tree line changes onto a surface when one is set.
type Mutation struct {
	o       *Outline
	surface buffer.DocumentStore
}

// Mutate starts a mutation. surface may be nil.
func (o *Outline) Mutate(surface buffer.DocumentStore) *Mutation {
	return &Mutation{o: o, surface: surface}
}

// Remove lifts positions from..to out of the outline.
func (m *Mutation) Remove(from, to int) Segment {
	o := m.o
	seg := Segment{
		Tree:   append([]string(nil), o.tree[from-1:to]...),
		Nodes:  append([]int(nil), o.nodes[from-1:to]...),
		Levels: append([]int(nil), o.levels[from-1:to]...),
	}
	o.tree = splice(o.tree, from-1, to, nil)
	o.nodes = splice(o.nodes, from-1, to, nil)
	o.levels = splice(o.levels, from-1, to, nil)
	if m.surface != nil {
		m.surface.Splice(from, to, nil)
	}
	return seg
}

// Insert places seg so that its first node lands at position after+1.
func (m *Mutation) Insert(after int, seg Segment) {
	o := m.o
	o.tree = splice(o.tree, after, after, seg.Tree)
	o.nodes = splice(o.nodes, after, after, seg.Nodes)
	o.levels = splice(o.levels, after, after, seg.Levels)
	if m.surface != nil {
		m.surface.Splice(after+1, after, seg.Tree)
	}
}

// SetTree replaces the tree line at pos.
func (m *Mutation) SetTree(pos int, line string) {
	m.o.tree[pos-1] = line
	if m.surface != nil {
		m.surface.SetLine(pos, line)
	}
}

// ShiftLevels moves positions from..to delta levels deeper.
func (m *Mutation) ShiftLevels(from, to, delta int) {
	for p := from; p <= to; p++ {
		m.o.levels[p-1] += delta
		m.SetTree(p, glyph.ChangeLevel(m.o.tree[p-1], delta))
	}
}

// ShiftNodes adds delta to the anchors of positions from..to.
func (m *Mutation) ShiftNodes(from, to, delta int) {
	for p := from; p <= to; p++ {
		m.o.nodes[p-1] += delta
	}
}

// Unselect clears the current-node status before positions move.
func (m *Mutation) Unselect() {
	if c := m.o.current; c >= 1 && c <= len(m.o.tree) && glyph.IsCurrent(m.o.tree[c-1]) {
		m.SetTree(c, glyph.Stamp(m.o.tree[c-1], false))
	}
}

// Select stamps pos as the current node.
func (m *Mutation) Select(pos int) {
	pos = min(max(pos, 1), len(m.o.tree))
	m.o.current = pos
	m.SetTree(pos, glyph.Stamp(m.o.tree[pos-1], true))
}

// splice replaces s[i:j] with repl.
func splice[T any](s []T, i, j int, repl []T) []T {
	out := make([]T, 0, len(s)-(j-i)+len(repl))
	out = append(out, s[:i]...)
	out = append(out, repl...)
	return append(out, s[j:]...)
}
