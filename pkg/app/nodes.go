package app

import "tableflip.dev/outliner/pkg/glyph"

// NodeView is a transport friendly projection of one node.
type NodeView struct {
	Pos      int    `json:"pos"`
	Level    int    `json:"level"`
	Line     int    `json:"line"`
	Heading  string `json:"heading"`
	Marked   bool   `json:"marked,omitempty"`
	Current  bool   `json:"current,omitempty"`
	Children bool   `json:"children,omitempty"`
	Folded   bool   `json:"folded,omitempty"`
}

// Node describes pos.
func (s *Session) Node(pos int) NodeView {
	o := s.outline
	line := o.Tree(pos)
	v := NodeView{
		Pos:      pos,
		Level:    o.Level(pos),
		Line:     o.Node(pos),
		Heading:  o.Heading(pos),
		Marked:   glyph.IsMarked(line),
		Current:  glyph.IsCurrent(line),
		Children: o.HasChildren(pos),
	}
	if pos > 1 && pos <= s.Tree.Len() {
		v.Folded = s.Tree.FoldClosed(pos) == pos
	}
	return v
}

// Nodes describes every headline, the root excluded.
func (s *Session) Nodes() []NodeView {
	out := make([]NodeView, 0, s.outline.Len()-1)
	for p := 2; p <= s.outline.Len(); p++ {
		out = append(out, s.Node(p))
	}
	return out
}
