package buffer

import "tableflip.dev/outliner/pkg/glyph"

// Tree is an in-memory RenderSurface. Folds follow the indentation of tree
// lines: a line starts a fold when the next line is deeper. Line 1 is the
// root and never folds.
type Tree struct {
	Memory
	closed []bool
}

var _ RenderSurface = (*Tree)(nil)

func NewTree(lines ...string) *Tree {
	t := &Tree{}
	t.SetLines(lines)
	return t
}

func (t *Tree) SetLines(lines []string) {
	t.Memory.SetLines(lines)
	t.closed = make([]bool, len(lines))
}

func (t *Tree) Splice(from, to int, lines []string) {
	from, to = clampRange(from, to, t.Len())
	t.Memory.Splice(from, to, lines)
	t.closed = splice(t.closed, from-1, to, make([]bool, len(lines)))
}

func (t *Tree) Append(lines ...string) {
	t.Memory.Append(lines...)
	t.closed = append(t.closed, make([]bool, len(lines))...)
}

func (t *Tree) level(line int) int {
	if line <= 1 {
		return 0
	}
	return glyph.Level(t.Line(line))
}

// foldEnd returns the last line of the fold starting at line, or line itself
// when nothing nests under it.
func (t *Tree) foldEnd(line int) int {
	if line <= 1 {
		return line
	}
	lev, end := t.level(line), line
	for i := line + 1; i <= t.Len(); i++ {
		if t.level(i) <= lev {
			break
		}
		end = i
	}
	return end
}

func (t *Tree) FoldClosed(line int) int {
	found := -1
	for s := line; s > 1; s-- {
		if !t.closed[s-1] {
			continue
		}
		if end := t.foldEnd(s); end > s && end >= line {
			found = s
		}
	}
	return found
}

func (t *Tree) FoldClosedEnd(line int) int {
	s := t.FoldClosed(line)
	if s == -1 {
		return -1
	}
	return t.foldEnd(s)
}

func (t *Tree) OpenFold(line int) {
	if s := t.FoldClosed(line); s != -1 {
		t.closed[s-1] = false
	}
}

// CloseFold closes the innermost open fold containing line.
func (t *Tree) CloseFold(line int) {
	for s := line; s > 1; s-- {
		if t.closed[s-1] {
			continue
		}
		if end := t.foldEnd(s); end > s && end >= line {
			t.closed[s-1] = true
			return
		}
	}
}

func (t *Tree) OpenAll(from, to int) {
	for s := 2; s <= t.Len(); s++ {
		if t.closed[s-1] && s <= to && t.foldEnd(s) >= from {
			t.closed[s-1] = false
		}
	}
}

// Visible reports whether line is shown: either no closed fold hides it or
// it is the first line of the closed fold.
func (t *Tree) Visible(line int) bool {
	s := t.FoldClosed(line)
	return s == -1 || s == line
}
