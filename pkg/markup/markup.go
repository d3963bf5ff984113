// Package markup recognises headlines in documents. Each markup flavour is an
// Adapter; the outline indexer only ever talks to the interface.
package markup

import "tableflip.dev/outliner/pkg/buffer"

// Headline is a detected headline. Line is the document line the node is
// anchored to, which for overline styles is the overline.
type Headline struct {
	Line    int
	Level   int
	Heading string
	// Checkable headlines carry inline flags (mark, expanded, current).
	Checkable bool
	Marked    bool
}

// NewHeadline is what an adapter inserts for a fresh node.
type NewHeadline struct {
	Heading string
	Lines   []string
	// Anchor is the index in Lines of the line the node points at.
	Anchor int
	// Column is the 1-based cursor column on the anchor line.
	Column int
}

// Adapter is the contract every markup flavour implements.
type Adapter interface {
	Name() string
	// Scan returns the headlines of lines in document order. When persist
	// is false the scan must not update adapter state; clipboard text is
	// scanned that way.
	Scan(lines []string, persist bool) []Headline
	// NewHeadline returns the lines for a new node at level. prev is the
	// document line the node is inserted after, "" at the top.
	NewHeadline(level int, prev string) NewHeadline
	// ChangeLevel rewrites a headline line to sit delta levels deeper.
	ChangeLevel(line string, delta int) string
}

// Window is the three line view used by line based detectors. Current is
// the line being examined; Prev and PrevPrev precede it.
type Window struct {
	Line     int
	Current  string
	Prev     string
	PrevPrev string
}

// Detector finds headlines one window at a time.
type Detector interface {
	// Prefilter is a cheap check run before Detect on every line.
	Prefilter(line string) bool
	Detect(w Window) (Headline, bool)
}

// ScanWindows slides a Window over lines and collects what d detects. Lines
// that were part of a headline never seed the next window.
func ScanWindows(lines []string, d Detector) []Headline {
	var out []Headline
	var w Window
	for i, line := range lines {
		w = Window{Line: i + 1, Current: line, Prev: w.Current, PrevPrev: w.Prev}
		if !d.Prefilter(line) {
			continue
		}
		h, ok := d.Detect(w)
		if !ok {
			continue
		}
		out = append(out, h)
		w.Current, w.Prev = "", ""
	}
	return out
}

// Flagger is implemented by adapters whose headlines carry flags right after
// the level number. MarkerSpan returns the byte offset where the level
// digits end and where the marker match (including a mark flag) ends.
type Flagger interface {
	MarkerSpan(line string) (levelEnd, end int, ok bool)
}

// Leveler is implemented by adapters that have no way to write headlines
// deeper than MaxLevel.
type Leveler interface {
	MaxLevel() int
}

// EditKind names a structural edit for Normalizer.
type EditKind int

const (
	EditInsert EditKind = iota
	EditPaste
	EditCut
	EditUp
	EditDown
	EditRight
	EditLeft
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditPaste:
		return "paste"
	case EditCut:
		return "cut"
	case EditUp:
		return "up"
	case EditDown:
		return "down"
	case EditRight:
		return "right"
	case EditLeft:
		return "left"
	}
	return "unknown"
}

// Edit describes the region touched by a structural edit. Positions are tree
// positions, lines are document lines; zero means unset.
type Edit struct {
	Kind       EditKind
	LevelDelta int
	// First..Last are the nodes pasted, moved or shifted, spanning document
	// lines BodyFirst..BodyLast.
	First, Last         int
	BodyFirst, BodyLast int
	// CutLine is the document line after which a region was removed and
	// CutPos the node that line belongs to.
	CutPos, CutLine int
}

// NodeIndex lets a Normalizer keep node anchors in step with lines it adds
// or removes.
type NodeIndex interface {
	Len() int
	Node(pos int) int
	Level(pos int) int
	SetNode(pos, line int)
	// ShiftNodes adds delta to the anchors of nodes from..Len.
	ShiftNodes(from, delta int)
}

// Normalizer is implemented by adapters that must tidy the document after a
// structural edit.
type Normalizer interface {
	Normalize(doc buffer.DocumentStore, idx NodeIndex, e Edit)
}
