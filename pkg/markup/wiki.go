package markup

import (
	"regexp"
	"strings"
	"unicode"
)

var trailingComment = regexp.MustCompile(`<!--.*?-->\s*$`)

// Wiki recognises equals-delimited headlines: "== Heading ==". The MediaWiki
// flavour requires the first '=' in column 1 and ignores trailing HTML
// comments. The vimwiki flavour allows leading blanks and needs at least one
// character between the delimiters.
type Wiki struct {
	vimwiki bool
}

var (
	_ Adapter  = Wiki{}
	_ Detector = Wiki{}
)

// NewWiki returns the MediaWiki flavour.
func NewWiki() Wiki { return Wiki{} }

// NewVimwiki returns the vimwiki flavour.
func NewVimwiki() Wiki { return Wiki{vimwiki: true} }

func (w Wiki) Name() string {
	if w.vimwiki {
		return "vimwiki"
	}
	return "wiki"
}

func (w Wiki) Scan(lines []string, _ bool) []Headline {
	return ScanWindows(lines, w)
}

func (w Wiki) Prefilter(line string) bool {
	if w.vimwiki {
		return strings.HasPrefix(strings.TrimSpace(line), "=")
	}
	return strings.HasPrefix(line, "=")
}

func (w Wiki) Detect(win Window) (Headline, bool) {
	s := win.Current
	if !w.vimwiki && strings.Contains(s, "<!--") {
		s = trailingComment.ReplaceAllString(s, "")
	}
	s = strings.TrimSpace(s)
	lev := w.delimiters(s)
	if lev == 0 {
		return Headline{}, false
	}
	return Headline{
		Line:    win.Line,
		Level:   lev,
		Heading: strings.TrimSpace(s[lev : len(s)-lev]),
	}, true
}

func (w Wiki) NewHeadline(level int, _ string) NewHeadline {
	eq := strings.Repeat("=", level)
	return NewHeadline{
		Heading: "NewHeadline",
		Lines:   []string{eq + "NewHeadline" + eq, ""},
		Column:  level + 1,
	}
}

func (w Wiki) ChangeLevel(line string, delta int) string {
	if delta == 0 {
		return line
	}
	s := line
	if !w.vimwiki && strings.Contains(s, "<!--") {
		s = trailingComment.ReplaceAllString(s, "")
	}
	start := 0
	if w.vimwiki {
		start = len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
	}
	end := len(strings.TrimRightFunc(s, unicode.IsSpace))
	if start >= end {
		return line
	}
	lev := w.delimiters(s[start:end])
	if lev == 0 {
		return line
	}
	eq := strings.Repeat("=", lev+delta)
	return line[:start] + eq + line[start+lev:end-lev] + eq + line[end:]
}

// delimiters returns the headline level of a trimmed line: the longest run
// of '=' that both opens and closes it, or 0.
func (w Wiki) delimiters(s string) int {
	gap := 0
	if w.vimwiki {
		gap = 1
	}
	lead := len(s) - len(strings.TrimLeft(s, "="))
	trail := len(s) - len(strings.TrimRight(s, "="))
	return min(lead, trail, (len(s)-gap)/2)
}
