// Package fold persists which tree nodes are expanded. An expanded node has
// an 'o' flag after the level number of its fold marker; nodes without it
// are collapsed.
package fold

import (
	"fmt"
	"slices"
	"strings"

	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

// Codec reads and writes fold flags in document headlines.
type Codec struct {
	Outline *outline.Outline
	Doc     buffer.DocumentStore
	Flags   markup.Flagger
}

// New returns a codec, or ErrUnsupported when a carries no inline flags.
func New(o *outline.Outline, doc buffer.DocumentStore, a markup.Adapter) (*Codec, error) {
	f, ok := a.(markup.Flagger)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no fold flags", outline.ErrUnsupported, a.Name())
	}
	return &Codec{Outline: o, Doc: doc, Flags: f}, nil
}

// flags returns the headline of pos and the offset just past its marker.
func (c *Codec) flags(pos int) (string, int, bool) {
	line := c.Doc.Line(c.Outline.Node(pos))
	_, end, ok := c.Flags.MarkerSpan(line)
	return line, end, ok
}

func hasFlag(line string, at int, f glyph.Flag) bool {
	return at < len(line) && line[at] == f.Byte()
}

// ReadClosed returns the collapsed nodes with children in from..to, last
// first.
func (c *Codec) ReadClosed(from, to int) []int {
	var closed []int
	for p := from; p <= to; p++ {
		if !c.Outline.HasChildren(p) {
			continue
		}
		line, end, ok := c.flags(p)
		if ok && hasFlag(line, end, glyph.Opened) {
			continue
		}
		closed = append(closed, p)
	}
	slices.Reverse(closed)
	return closed
}

// WriteClosed sets the expanded flag of every node with children in
// from..to: cleared for nodes in closed, set for the rest.
func (c *Codec) WriteClosed(from, to int, closed []int) {
	for p := from; p <= to; p++ {
		if !c.Outline.HasChildren(p) {
			continue
		}
		line, end, ok := c.flags(p)
		if !ok {
			continue
		}
		isClosed := slices.Contains(closed, p)
		switch {
		case hasFlag(line, end, glyph.Opened) && isClosed:
			c.Doc.SetLine(c.Outline.Node(p), line[:end]+strings.TrimLeft(line[end:], "ox"))
		case !hasFlag(line, end, glyph.Opened) && !isClosed:
			c.Doc.SetLine(c.Outline.Node(p), line[:end]+"o"+line[end:])
		}
	}
}

// Flip turns a list of expanded nodes in from..to into the list of
// collapsed ones, last first. Nodes without children are dropped.
func Flip(o *outline.Outline, from, to int, folds []int) []int {
	var flipped []int
	for p := from; p <= to; p++ {
		if o.HasChildren(p) && !slices.Contains(folds, p) {
			flipped = append(flipped, p)
		}
	}
	slices.Reverse(flipped)
	return flipped
}

// Cleanup removes expanded flags from nodes without children and returns
// how many headlines changed.
func (c *Codec) Cleanup() int {
	n := 0
	for p := 2; p <= c.Outline.Len(); p++ {
		if c.Outline.HasChildren(p) {
			continue
		}
		line, end, ok := c.flags(p)
		if !ok || !hasFlag(line, end, glyph.Opened) {
			continue
		}
		c.Doc.SetLine(c.Outline.Node(p), line[:end]+strings.TrimLeft(line[end:], "ox"))
		n++
	}
	return n
}

// Startup scans headlines for the startup node and the expanded nodes. The
// startup node is 0 when no headline carries the current flag.
func (c *Codec) Startup() (current int, opened []int) {
	for p := 2; p <= c.Outline.Len(); p++ {
		line, end, ok := c.flags(p)
		if !ok || end >= len(line) {
			continue
		}
		switch {
		case hasFlag(line, end, glyph.Current):
			current = p
		case hasFlag(line, end, glyph.Opened):
			opened = append(opened, p)
			if hasFlag(line, end+1, glyph.Current) {
				current = p
			}
		}
	}
	return current, opened
}

// Save records the fold state drawn on s for from..to into the document.
func (c *Codec) Save(s buffer.RenderSurface, from, to int) {
	from, to, ok := c.span(from, to)
	if !ok {
		return
	}
	c.WriteClosed(from, to, Get(s, from, to))
}

// Restore redraws the fold state of from..to on s from the document.
func (c *Codec) Restore(s buffer.RenderSurface, from, to int) {
	from, to, ok := c.span(from, to)
	if !ok {
		return
	}
	Create(s, from, to, c.ReadClosed(from, to))
}

// span orders a range and widens a single node to its subtree.
func (c *Codec) span(from, to int) (int, int, bool) {
	if to < from {
		from, to = to, from
	}
	if to <= 1 {
		return 0, 0, false
	}
	if from == to {
		to += c.Outline.Subnodes(to)
		if from == to {
			return 0, 0, false
		}
	}
	return from, to, true
}
