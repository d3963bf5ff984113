package glyph

import "strings"

// A tree line is laid out as
//
//	<status><mark><". " per level below 1>|<heading>
//
// status is '=' on the current node and ' ' elsewhere, mark is 'x' on marked
// nodes. The root line is the outline name behind two blanks.
const (
	Separator = "|"
	Indent    = ". "

	statusCurrent = '='
	statusNone    = ' '
	prefixLen     = 2
)

// TreeLine formats the tree line of a node.
func TreeLine(level int, marked bool, heading string) string {
	mark := " "
	if marked {
		mark = "x"
	}
	if level < 1 {
		level = 1
	}
	return " " + mark + strings.Repeat(Indent, level-1) + Separator + heading
}

// RootLine formats line 1 of a tree.
func RootLine(name string) string {
	return "  " + name
}

// Stamp sets or clears the current-node status of a tree line.
func Stamp(line string, current bool) string {
	if line == "" {
		line = " "
	}
	status := string(statusNone)
	if current {
		status = string(statusCurrent)
	}
	return status + line[1:]
}

// IsCurrent reports whether line carries the current-node status.
func IsCurrent(line string) bool {
	return len(line) > 0 && line[0] == statusCurrent
}

// IsMarked reports whether line carries the mark glyph.
func IsMarked(line string) bool {
	return len(line) > 1 && line[1] == Marked.Byte()
}

// SetMarked sets or clears the mark glyph of a tree line.
func SetMarked(line string, marked bool) string {
	if len(line) < prefixLen {
		return line
	}
	mark := " "
	if marked {
		mark = "x"
	}
	return line[:1] + mark + line[2:]
}

// ChangeLevel adds or removes delta level indents of a node tree line.
func ChangeLevel(line string, delta int) string {
	if delta == 0 || len(line) < prefixLen {
		return line
	}
	if delta > 0 {
		return line[:prefixLen] + strings.Repeat(Indent, delta) + line[prefixLen:]
	}
	cut := prefixLen - 2*delta
	if cut > len(line) {
		cut = len(line)
	}
	return line[:prefixLen] + line[cut:]
}

// Level parses the level of a node tree line; 0 for lines without a
// separator, such as the root.
func Level(line string) int {
	sep := strings.Index(line, Separator)
	if sep < prefixLen {
		return 0
	}
	return 1 + strings.Count(line[prefixLen:sep], Indent)
}

// Heading returns the text after the separator.
func Heading(line string) string {
	if _, head, ok := strings.Cut(line, Separator); ok {
		return head
	}
	if len(line) > prefixLen {
		return line[prefixLen:]
	}
	return ""
}
