package markup

import "strings"

// Asterisk recognises "* Heading" lines where the number of leading
// asterisks is the level, as used by viki and org-mode.
type Asterisk struct{}

var (
	_ Adapter  = Asterisk{}
	_ Detector = Asterisk{}
)

func (Asterisk) Name() string { return "viki" }

func (a Asterisk) Scan(lines []string, _ bool) []Headline {
	return ScanWindows(lines, a)
}

func (Asterisk) Prefilter(line string) bool {
	return strings.HasPrefix(line, "*")
}

func (Asterisk) Detect(w Window) (Headline, bool) {
	lev := stars(w.Current)
	if lev == 0 {
		return Headline{}, false
	}
	return Headline{
		Line:    w.Line,
		Level:   lev,
		Heading: strings.TrimSpace(w.Current[lev:]),
	}, true
}

func (Asterisk) NewHeadline(level int, _ string) NewHeadline {
	return NewHeadline{
		Heading: "NewHeadline",
		Lines:   []string{strings.Repeat("*", level) + " NewHeadline", ""},
		Column:  level + 2,
	}
}

func (Asterisk) ChangeLevel(line string, delta int) string {
	lev := stars(line)
	if delta == 0 || lev == 0 {
		return line
	}
	return strings.Repeat("*", lev+delta) + " " + line[lev+1:]
}

// stars returns the number of leading asterisks when a blank follows them.
func stars(line string) int {
	n := len(line) - len(strings.TrimLeft(line, "*"))
	if n == 0 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}
