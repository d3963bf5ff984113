package fold

import (
	"slices"

	"tableflip.dev/outliner/pkg/buffer"
)

// Get lists the closed folds of s in from..to, nested ones included, last
// first. Folds are opened top down to discover what they hide and closed
// again before returning.
func Get(s buffer.RenderSurface, from, to int) []int {
	var closed []int
	for ln := from; ln <= to; {
		if s.FoldClosed(ln) != ln {
			ln++
			continue
		}
		closed = append(closed, ln)
		start, end := ln, s.FoldClosedEnd(ln)+1
		ln = end
		s.OpenFold(start)
		for inner := start + 1; inner < end; inner++ {
			if s.FoldClosed(inner) == inner {
				closed = append(closed, inner)
				s.OpenFold(inner)
			}
		}
	}
	slices.Reverse(closed)
	for _, ln := range closed {
		s.CloseFold(ln)
	}
	return closed
}

// Create opens every fold in from..to and closes the ones listed, which must
// be ordered last first.
func Create(s buffer.RenderSurface, from, to int, closed []int) {
	s.OpenAll(from, to)
	for _, ln := range closed {
		s.CloseFold(ln)
	}
}
