package outline

import (
	"regexp"
	"sort"
)

// Match is a node found by Grep.
type Match struct {
	Pos int
	// Count is the number of matching lines for all AND patterns.
	Count int
	// Line is the first matching line, or the node's anchor when only NOT
	// patterns were given.
	Line int
	UNL  string
}

// Grep finds nodes whose own lines match every pattern in and and no
// pattern in not.
func (o *Outline) Grep(lines []string, and, not []*regexp.Regexp) []Match {
	counts := make(map[int]int)
	first := make(map[int]int)

	var candidates map[int]bool
	if len(and) == 0 {
		candidates = make(map[int]bool, o.Len())
		for p := 1; p <= o.Len(); p++ {
			candidates[p] = true
		}
	}
	for _, re := range and {
		hit := make(map[int]bool)
		for i, line := range lines {
			if !re.MatchString(line) {
				continue
			}
			ln := i + 1
			p := o.CurrentIndex(ln)
			hit[p] = true
			counts[p]++
			if f, ok := first[p]; !ok || ln < f {
				first[p] = ln
			}
		}
		if candidates == nil {
			candidates = hit
			continue
		}
		for p := range candidates {
			if !hit[p] {
				delete(candidates, p)
			}
		}
	}
	for _, re := range not {
		for i, line := range lines {
			if re.MatchString(line) {
				delete(candidates, o.CurrentIndex(i+1))
			}
		}
	}

	out := make([]Match, 0, len(candidates))
	for p := range candidates {
		m := Match{Pos: p, Count: counts[p], Line: first[p], UNL: o.UNLString(p)}
		if len(and) == 0 {
			m.Line = o.Node(p)
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	return out
}
