package markup

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown recognises ATX headings ("## Heading"). The document is parsed
// with goldmark so '#' lines inside fenced code are not headlines. Setext
// headings are left in the body: their level lives on the underline.
type Markdown struct {
	md goldmark.Markdown
}

var (
	_ Adapter = (*Markdown)(nil)
	_ Leveler = (*Markdown)(nil)
)

func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New()}
}

func (m *Markdown) Name() string { return "markdown" }

// Scan hands goldmark only the ATX lines unless a fence or an HTML block
// could be hiding some of them, in which case the whole document is parsed.
func (m *Markdown) Scan(lines []string, _ bool) []Headline {
	var atx []int
	full := false
	for i, l := range lines {
		switch {
		case atxLevel(l) > 0:
			atx = append(atx, i+1)
		case opensBlock(l):
			full = true
		}
	}
	if len(atx) == 0 {
		return nil
	}
	if full {
		return m.parse(lines, nil)
	}
	src := make([]string, len(atx))
	for i, ln := range atx {
		src[i] = lines[ln-1]
	}
	return m.parse(src, atx)
}

// parse returns the ATX headings goldmark finds in lines. lineNo maps a line
// of lines to the document line it came from; nil means they are the same.
func (m *Markdown) parse(lines []string, lineNo []int) []Headline {
	src := []byte(strings.Join(lines, "\n"))
	starts := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		starts[i] = off
		off += len(l) + 1
	}
	lineOf := func(offset int) int {
		return sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
	}

	doc := m.md.Parser().Parse(text.NewReader(src))
	var out []Headline
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		ln := lineOf(h.Lines().At(0).Start)
		if atxLevel(lines[ln-1]) != h.Level {
			return ast.WalkSkipChildren, nil
		}
		if lineNo != nil {
			ln = lineNo[ln-1]
		}
		out = append(out, Headline{
			Line:    ln,
			Level:   h.Level,
			Heading: strings.TrimSpace(string(h.Text(src))),
		})
		return ast.WalkSkipChildren, nil
	})
	return out
}

func (m *Markdown) NewHeadline(level int, _ string) NewHeadline {
	return NewHeadline{
		Heading: "NewHeadline",
		Lines:   []string{strings.Repeat("#", level) + " NewHeadline", ""},
		Column:  level + 2,
	}
}

func (m *Markdown) ChangeLevel(line string, delta int) string {
	lev := atxLevel(line)
	if delta == 0 || lev == 0 {
		return line
	}
	indent := len(line) - len(strings.TrimLeft(line, " "))
	return line[:indent] + strings.Repeat("#", lev+delta) + line[indent+lev:]
}

// MaxLevel is the deepest ATX heading.
func (m *Markdown) MaxLevel() int { return 6 }

// atxLevel counts the opening '#' run of an ATX heading line, allowing up to
// three leading blanks, or returns 0.
func atxLevel(line string) int {
	rest := strings.TrimLeft(line, " ")
	if len(line)-len(rest) > 3 {
		return 0
	}
	n := len(rest) - len(strings.TrimLeft(rest, "#"))
	if n == 0 || (n < len(rest) && rest[n] != ' ' && rest[n] != '\t') {
		return 0
	}
	return n
}

// opensBlock reports whether line may start a fenced code or HTML block,
// either of which can hold '#' lines that are not headings.
func opensBlock(line string) bool {
	rest := strings.TrimLeft(line, " ")
	if len(line)-len(rest) > 3 {
		return false
	}
	return strings.HasPrefix(rest, "```") || strings.HasPrefix(rest, "~~~") || strings.HasPrefix(rest, "<")
}
