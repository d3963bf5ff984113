package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap80 wraps help text at 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap reflows text to width. Whitespace runs, newlines included, collapse
// to one space first so indented raw strings wrap like prose.
func Wrap(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if flat == "" {
		return text
	}
	return wordwrap.String(flat, width)
}
