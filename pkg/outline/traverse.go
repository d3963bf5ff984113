package outline

import "strings"

// UNLSeparator joins the headings of a UNL.
const UNLSeparator = " -> "

// HasChildren reports whether the node at pos has at least one child. The
// root and the last node never do.
func (o *Outline) HasChildren(pos int) bool {
	if pos <= 1 || pos >= o.Len() {
		return false
	}
	return o.Level(pos) < o.Level(pos+1)
}

// Subnodes counts all descendants of pos.
func (o *Outline) Subnodes(pos int) int {
	z := o.Len()
	if pos <= 1 || pos >= z {
		return 0
	}
	lev := o.Level(pos)
	for i := pos + 1; i <= z; i++ {
		if o.Level(i) <= lev {
			return i - 1 - pos
		}
	}
	return z - pos
}

// Parent returns the closest ancestor of pos, 0 for top level nodes.
func (o *Outline) Parent(pos int) int {
	lev := o.Level(pos)
	if pos <= 1 || lev == 1 {
		return 0
	}
	for i := pos - 1; i > 1; i-- {
		if o.Level(i) < lev {
			return i
		}
	}
	return 0
}

// Parents returns the ancestors of pos, outermost first.
func (o *Outline) Parents(pos int) []int {
	if pos <= 1 {
		return nil
	}
	var parents []int
	lev := o.Level(pos)
	for i := pos - 1; i > 1 && lev > 1; i-- {
		if l := o.Level(i); l < lev {
			lev = l
			parents = append(parents, i)
		}
	}
	for i, j := 0, len(parents)-1; i < j; i, j = i+1, j-1 {
		parents[i], parents[j] = parents[j], parents[i]
	}
	return parents
}

// UNL returns the headings from the top of the outline down to pos.
func (o *Outline) UNL(pos int) []string {
	if pos <= 1 {
		return []string{"top-of-file"}
	}
	chain := append(o.Parents(pos), pos)
	heads := make([]string, len(chain))
	for i, p := range chain {
		heads[i] = o.Heading(p)
	}
	return heads
}

// UNLString joins UNL with UNLSeparator.
func (o *Outline) UNLString(pos int) string {
	return strings.Join(o.UNL(pos), UNLSeparator)
}

// NodeRange returns the document lines owned by pos alone, docLen being the
// length of the document.
func (o *Outline) NodeRange(pos, docLen int) (int, int) {
	start := o.Node(pos)
	if pos >= o.Len() {
		return start, docLen
	}
	return start, max(o.Node(pos+1)-1, 1)
}

// SubtreeRange returns the document lines of pos and all its descendants.
func (o *Outline) SubtreeRange(pos, docLen int) (int, int) {
	last := pos + o.Subnodes(pos)
	return o.Node(pos), o.BodyEnd(last, docLen)
}

// BodyEnd returns the last document line before the node after pos.
func (o *Outline) BodyEnd(pos, docLen int) int {
	if pos >= o.Len() {
		return docLen
	}
	return o.Node(pos+1) - 1
}
