package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultMarker opens a fold marker headline.
	DefaultMarker = "{{{"
	// DefaultRStrip is trimmed from the right of fold marker headings.
	DefaultRStrip = " \t"
)

// FoldMarker recognises headlines that end in a start fold marker followed
// by a level number, like "Intro {{{1". Flags may follow the number: x for
// marked, o for expanded, = for the startup node.
type FoldMarker struct {
	marker string
	rstrip string
	re     *regexp.Regexp
}

var (
	_ Adapter  = (*FoldMarker)(nil)
	_ Detector = (*FoldMarker)(nil)
	_ Flagger  = (*FoldMarker)(nil)
)

// NewFoldMarker returns an adapter for marker. Empty arguments select the
// defaults.
func NewFoldMarker(marker, rstrip string) *FoldMarker {
	if marker == "" {
		marker = DefaultMarker
	}
	if rstrip == "" {
		rstrip = DefaultRStrip
	}
	return &FoldMarker{
		marker: marker,
		rstrip: rstrip,
		re:     regexp.MustCompile(regexp.QuoteMeta(marker) + `(\d+)(x?)`),
	}
}

func (f *FoldMarker) Name() string { return "fmr" }

// Marker returns the start fold marker.
func (f *FoldMarker) Marker() string { return f.marker }

func (f *FoldMarker) Scan(lines []string, _ bool) []Headline {
	return ScanWindows(lines, f)
}

func (f *FoldMarker) Prefilter(line string) bool {
	return strings.Contains(line, f.marker)
}

func (f *FoldMarker) Detect(w Window) (Headline, bool) {
	loc := f.re.FindStringSubmatchIndex(w.Current)
	if loc == nil {
		return Headline{}, false
	}
	lev, err := strconv.Atoi(w.Current[loc[2]:loc[3]])
	if err != nil || lev < 1 {
		return Headline{}, false
	}
	head := strings.TrimLeftFunc(w.Current[:loc[0]], unicode.IsSpace)
	head = strings.TrimRight(head, f.rstrip)
	head = strings.TrimSpace(strings.Trim(head, "-=~"))
	return Headline{
		Line:      w.Line,
		Level:     lev,
		Heading:   head,
		Checkable: true,
		Marked:    loc[5] > loc[4],
	}, true
}

func (f *FoldMarker) NewHeadline(level int, _ string) NewHeadline {
	return NewHeadline{
		Heading: "NewHeadline",
		Lines:   []string{fmt.Sprintf("---NewHeadline--- %s%d", f.marker, level), ""},
		Column:  4,
	}
}

func (f *FoldMarker) ChangeLevel(line string, delta int) string {
	if delta == 0 {
		return line
	}
	loc := f.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	lev, err := strconv.Atoi(line[loc[2]:loc[3]])
	if err != nil {
		return line
	}
	return line[:loc[2]] + strconv.Itoa(lev+delta) + line[loc[3]:]
}

func (f *FoldMarker) MarkerSpan(line string) (int, int, bool) {
	loc := f.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return 0, 0, false
	}
	return loc[3], loc[1], true
}
