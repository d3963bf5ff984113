package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"tableflip.dev/outliner/pkg/buffer"
)

// adornmentChars are the punctuation characters reStructuredText accepts in
// section adornments.
const adornmentChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// adornmentStyles lists styles in order of preference. A style is the
// adornment character, doubled when the title also has an overline.
var adornmentStyles = func() []string {
	styles := strings.Fields(`== -- = - * " ' ` + "`" + ` ~ : ^ + # . _`)
	seen := make(map[string]bool, 64)
	for _, s := range styles {
		seen[s] = true
	}
	for _, c := range adornmentChars {
		if s := string(c) + string(c); !seen[s] {
			styles = append(styles, s)
			seen[s] = true
		}
		if s := string(c); !seen[s] {
			styles = append(styles, s)
			seen[s] = true
		}
	}
	return styles
}()

// Rest recognises reStructuredText section titles. Levels are assigned to
// adornment styles in the order the styles first appear in the document, so
// the adapter keeps the style table of the last persisted scan.
type Rest struct {
	styleLevels map[string]int
}

var (
	_ Adapter    = (*Rest)(nil)
	_ Normalizer = (*Rest)(nil)
)

func NewRest() *Rest {
	return &Rest{styleLevels: make(map[string]int)}
}

func (r *Rest) Name() string { return "rest" }

func (r *Rest) Scan(lines []string, persist bool) []Headline {
	s := &restScan{levels: make(map[string]int)}
	out := ScanWindows(lines, s)
	if persist {
		r.styleLevels = s.levels
	}
	return out
}

// restScan holds the style table of a single scan.
//
//	------  PrevPrev  overline or blank
//	 title  Prev      not blank; may be inset only under an overline
//	------  Current   underline, at least as long as the title
type restScan struct {
	levels map[string]int
}

func (s *restScan) Prefilter(line string) bool {
	return isAdornment(rstrip(line))
}

func (s *restScan) Detect(w Window) (Headline, bool) {
	l1, l2, l3 := rstrip(w.Current), rstrip(w.Prev), rstrip(w.PrevPrev)
	if l2 == "" || len(l1) < utf8.RuneCountInString(l2) {
		return Headline{}, false
	}
	var style string
	var anchor int
	switch {
	case l3 == "" && l2 == strings.TrimLeftFunc(l2, unicode.IsSpace):
		style, anchor = l1[:1], w.Line-1
	case l3 == l1:
		style, anchor = l1[:1]+l1[:1], w.Line-2
	default:
		return Headline{}, false
	}
	lev, ok := s.levels[style]
	if !ok {
		lev = len(s.levels) + 1
		s.levels[style] = lev
	}
	return Headline{Line: anchor, Level: lev, Heading: strings.TrimSpace(l2)}, true
}

func (r *Rest) NewHeadline(level int, prev string) NewHeadline {
	style := r.styleFor(level)
	c := style[:1]
	var lines []string
	if len(style) == 1 {
		lines = []string{"NewHeadline", strings.Repeat(c, 11), ""}
	} else {
		lines = []string{strings.Repeat(c, 11), "NewHeadline", strings.Repeat(c, 11), ""}
	}
	anchor := 0
	if strings.TrimSpace(prev) != "" {
		lines = append([]string{""}, lines...)
		anchor = 1
	}
	return NewHeadline{Heading: "NewHeadline", Lines: lines, Anchor: anchor, Column: 1}
}

// ChangeLevel leaves the line alone; adornments are rewritten by Normalize
// once the whole region is in place.
func (r *Rest) ChangeLevel(line string, _ int) string {
	return line
}

// styleFor returns the adornment style of level, claiming the first unused
// style for levels not seen yet.
func (r *Rest) styleFor(level int) string {
	if r.styleLevels == nil {
		r.styleLevels = make(map[string]int)
	}
	byLevel := make(map[int]string, len(r.styleLevels))
	for s, l := range r.styleLevels {
		byLevel[l] = s
	}
	if s, ok := byLevel[level]; ok {
		return s
	}
	for _, s := range adornmentStyles {
		if _, used := r.styleLevels[s]; !used {
			r.styleLevels[s] = level
			return s
		}
	}
	return byLevel[len(byLevel)]
}

// Normalize keeps titles from merging into neighbouring text and restyles
// the adornments of nodes whose level changed.
func (r *Rest) Normalize(doc buffer.DocumentStore, idx NodeIndex, e Edit) {
	blank := func(n int) bool { return strings.TrimSpace(doc.Line(n)) == "" }
	blankAfter := func(line, pos int) {
		doc.Splice(line+1, line, []string{""})
		idx.ShiftNodes(pos, 1)
	}

	if (e.Kind == EditCut || e.Kind == EditUp) && e.CutLine > 0 && e.CutLine < doc.Len() && !blank(e.CutLine) {
		blankAfter(e.CutLine, e.CutPos+1)
	}
	if e.Kind == EditCut || e.First == 0 {
		return
	}

	if e.BodyLast < doc.Len() && !blank(e.BodyLast) {
		blankAfter(e.BodyLast, e.Last+1)
	}

	if e.LevelDelta != 0 || e.Kind == EditPaste {
		r.restyle(doc, idx, e.First, e.Last)
	}

	if first := idx.Node(e.First); first > 1 && !blank(first-1) {
		blankAfter(first-1, e.First)
	}

	if e.Kind == EditDown && e.CutLine > 0 && e.CutLine < doc.Len() && !blank(e.CutLine) {
		blankAfter(e.CutLine, e.CutPos+1)
	}
}

// restyle walks nodes last to first so line changes never move a node that
// is still to be visited.
func (r *Rest) restyle(doc buffer.DocumentStore, idx NodeIndex, first, last int) {
	want := make(map[int]string)
	for i := last; i >= first; i-- {
		lev := idx.Level(i)
		style, ok := want[lev]
		if !ok {
			style = r.styleFor(lev)
			want[lev] = style
		}

		bln := idx.Node(i)
		l1, l2 := rstrip(doc.Line(bln)), rstrip(doc.Line(bln+1))
		l3 := ""
		if bln+2 <= doc.Len() {
			l3 = rstrip(doc.Line(bln + 2))
		}
		have, ok := deduceStyle(l1, l2, l3)
		if !ok || have == style {
			continue
		}
		c := style[:1]

		switch {
		case len(have) == 1 && len(style) == 1:
			doc.SetLine(bln+1, strings.Repeat(c, len(l2)))
		case len(have) == 2 && len(style) == 2:
			doc.SetLine(bln, strings.Repeat(c, len(l1)))
			doc.SetLine(bln+2, strings.Repeat(c, len(l3)))
		case len(have) == 1:
			// underline to overline: the new overline becomes the anchor
			if have != c {
				doc.SetLine(bln+1, strings.Repeat(c, len(l2)))
			}
			doc.Splice(bln, bln-1, []string{strings.Repeat(c, len(l2))})
			idx.ShiftNodes(i+1, 1)
		default:
			// overline to underline
			if have[:1] != c {
				doc.SetLine(bln+2, strings.Repeat(c, len(l3)))
			}
			if trimmed := strings.TrimLeftFunc(l2, unicode.IsSpace); trimmed != l2 {
				doc.SetLine(bln+1, trimmed)
			}
			l0 := ""
			if bln > 1 {
				l0 = rstrip(doc.Line(bln - 1))
			}
			if l0 == "" {
				doc.Splice(bln, bln, nil)
				idx.ShiftNodes(i+1, -1)
			} else {
				doc.SetLine(bln, "")
				idx.SetNode(i, bln+1)
			}
		}
	}
}

// deduceStyle reads the style of a node from its first three lines.
func deduceStyle(l1, l2, l3 string) (string, bool) {
	if l1 != "" && l1 == l3 && isAdornment(l1) && len(l1) >= utf8.RuneCountInString(l2) {
		return l1[:1] + l1[:1], true
	}
	if isAdornment(l2) && len(l2) >= utf8.RuneCountInString(l1) {
		return l2[:1], true
	}
	return "", false
}

func isAdornment(s string) bool {
	if s == "" || !strings.ContainsRune(adornmentChars, rune(s[0])) {
		return false
	}
	return strings.Trim(s, s[:1]) == ""
}

func rstrip(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
