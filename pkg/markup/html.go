package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var htmlOpenTag = regexp.MustCompile(`(?i)<\s*h(\d+)[^>]*>`)

// HTML recognises <hN>heading</hN> written on a single line. Markup inside
// the heading is dropped from the tree text.
type HTML struct{}

var (
	_ Adapter  = HTML{}
	_ Detector = HTML{}
)

func (HTML) Name() string { return "html" }

func (h HTML) Scan(lines []string, _ bool) []Headline {
	return ScanWindows(lines, h)
}

func (HTML) Prefilter(line string) bool {
	return strings.Contains(line, "</h") || strings.Contains(line, "</H")
}

func (HTML) Detect(w Window) (Headline, bool) {
	m, ok := matchHTMLHeading(w.Current)
	if !ok {
		return Headline{}, false
	}
	return Headline{
		Line:    w.Line,
		Level:   m.level,
		Heading: textContent(w.Current[m.openEnd:m.closeStart]),
	}, true
}

func (HTML) NewHeadline(level int, _ string) NewHeadline {
	return NewHeadline{
		Heading: "NewHeadline",
		Lines:   []string{fmt.Sprintf("<h%d>NewHeadline</h%d>", level, level), ""},
		Column:  len(fmt.Sprintf("<h%d>", level)) + 1,
	}
}

func (HTML) ChangeLevel(line string, delta int) string {
	if delta == 0 {
		return line
	}
	m, ok := matchHTMLHeading(line)
	if !ok {
		return line
	}
	n := strconv.Itoa(m.level + delta)
	return line[:m.openDigits[0]] + n + line[m.openDigits[1]:m.closeDigits[0]] + n + line[m.closeDigits[1]:]
}

type htmlHeading struct {
	level       int
	openDigits  [2]int
	closeDigits [2]int
	openEnd     int
	closeStart  int
}

// matchHTMLHeading finds the first opening heading tag that is closed by a
// tag with the same number later on the line.
func matchHTMLHeading(line string) (htmlHeading, bool) {
	for _, loc := range htmlOpenTag.FindAllStringSubmatchIndex(line, -1) {
		digits := line[loc[2]:loc[3]]
		lev, err := strconv.Atoi(digits)
		if err != nil || lev < 1 {
			continue
		}
		start, ds, de, ok := findCloseTag(line, loc[1], digits)
		if !ok {
			continue
		}
		return htmlHeading{
			level:       lev,
			openDigits:  [2]int{loc[2], loc[3]},
			closeDigits: [2]int{ds, de},
			openEnd:     loc[1],
			closeStart:  start,
		}, true
	}
	return htmlHeading{}, false
}

// findCloseTag looks for </hDIGITS> at or after from, case insensitive, with
// optional blanks before '>'.
func findCloseTag(line string, from int, digits string) (start, ds, de int, ok bool) {
	for i := from; i+3 < len(line); i++ {
		if line[i] != '<' || line[i+1] != '/' || (line[i+2] != 'h' && line[i+2] != 'H') {
			continue
		}
		ds = i + 3
		if !strings.HasPrefix(line[ds:], digits) {
			continue
		}
		de = ds + len(digits)
		j := de
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		if j < len(line) && line[j] == '>' {
			return i, ds, de, true
		}
	}
	return 0, 0, 0, false
}

// textContent drops tags and unescapes entities.
func textContent(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
