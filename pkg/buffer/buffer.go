// Package buffer holds the line stores an outline is built from and rendered
// into. Line numbers are 1-based throughout.
package buffer

// DocumentStore is an ordered, 1-based sequence of text lines.
type DocumentStore interface {
	Len() int
	Lines() []string
	SetLines(lines []string)
	Line(n int) string
	SetLine(n int, s string)
	// Range returns a copy of lines from..to inclusive.
	Range(from, to int) []string
	// Splice replaces lines from..to inclusive with lines. A to of from-1
	// inserts before from without removing anything.
	Splice(from, to int, lines []string)
	Append(lines ...string)
}

// RenderSurface is the store a tree is drawn into. On top of the line
// primitives it exposes the fold state of the host view.
type RenderSurface interface {
	DocumentStore
	// FoldClosed returns the first line of the outermost closed fold that
	// contains line, or -1.
	FoldClosed(line int) int
	// FoldClosedEnd returns the last line of that fold, or -1.
	FoldClosedEnd(line int) int
	OpenFold(line int)
	CloseFold(line int)
	// OpenAll opens every fold touching from..to, nested ones included.
	OpenAll(from, to int)
}

// Memory is an in-memory DocumentStore.
type Memory struct {
	lines []string
}

var _ DocumentStore = (*Memory)(nil)

// New returns a store holding a copy of lines.
func New(lines ...string) *Memory {
	l := &Memory{}
	l.SetLines(lines)
	return l
}

func (l *Memory) Len() int { return len(l.lines) }

func (l *Memory) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Memory) SetLines(lines []string) {
	l.lines = append(make([]string, 0, len(lines)), lines...)
}

func (l *Memory) Line(n int) string {
	if n < 1 || n > len(l.lines) {
		return ""
	}
	return l.lines[n-1]
}

func (l *Memory) SetLine(n int, s string) {
	if n < 1 || n > len(l.lines) {
		return
	}
	l.lines[n-1] = s
}

func (l *Memory) Range(from, to int) []string {
	from, to = clampRange(from, to, len(l.lines))
	out := make([]string, to-from+1)
	copy(out, l.lines[from-1:to])
	return out
}

func (l *Memory) Splice(from, to int, lines []string) {
	from, to = clampRange(from, to, len(l.lines))
	l.lines = splice(l.lines, from-1, to, lines)
}

func (l *Memory) Append(lines ...string) {
	l.lines = append(l.lines, lines...)
}

// clampRange keeps from in 1..n+1 and to in from-1..n.
func clampRange(from, to, n int) (int, int) {
	if from < 1 {
		from = 1
	}
	if from > n+1 {
		from = n + 1
	}
	if to > n {
		to = n
	}
	if to < from-1 {
		to = from - 1
	}
	return from, to
}

// splice replaces s[i:j] with repl.
func splice[T any](s []T, i, j int, repl []T) []T {
	out := make([]T, 0, len(s)-(j-i)+len(repl))
	out = append(out, s[:i]...)
	out = append(out, repl...)
	return append(out, s[j:]...)
}
