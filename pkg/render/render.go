// Package render brings a drawn tree in line with a freshly built one while
// touching as few lines as possible.
package render

import "tableflip.dev/outliner/pkg/buffer"

// Kind says how much of the surface a Patch rewrites.
type Kind int

const (
	// None leaves the surface alone.
	None Kind = iota
	// Line rewrites a single line.
	Line
	// Suffix rewrites everything from the first changed line to the end.
	Suffix
	// Full replaces all lines.
	Full
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Line:
		return "line"
	case Suffix:
		return "suffix"
	case Full:
		return "full"
	}
	return "unknown"
}

// Patch is the update needed to turn one set of tree lines into another.
// From is the 1-based first line written.
type Patch struct {
	Kind  Kind
	From  int
	Lines []string
}

// Diff computes the patch from prev to next. Lengths that differ force a
// full redraw; otherwise a single changed line is patched alone and two or
// more changes redraw from the first of them.
func Diff(prev, next []string) Patch {
	if len(prev) != len(next) {
		return Patch{Kind: Full, From: 1, Lines: next}
	}
	first := -1
	for i := range next {
		if prev[i] == next[i] {
			continue
		}
		if first != -1 {
			return Patch{Kind: Suffix, From: first + 1, Lines: next[first:]}
		}
		first = i
	}
	if first == -1 {
		return Patch{Kind: None}
	}
	return Patch{Kind: Line, From: first + 1, Lines: next[first : first+1]}
}

// Apply writes p onto s.
func Apply(s buffer.DocumentStore, p Patch) {
	switch p.Kind {
	case Full:
		s.SetLines(p.Lines)
	case Suffix:
		s.Splice(p.From, s.Len(), p.Lines)
	case Line:
		s.SetLine(p.From, p.Lines[0])
	}
}

// Render diffs s against next and applies the result.
func Render(s buffer.DocumentStore, next []string) Patch {
	p := Diff(s.Lines(), next)
	Apply(s, p)
	return p
}
