package outline

import (
	"fmt"
	"slices"
	"strings"

	"tableflip.dev/outliner/pkg/markup"
)

// Verify rebuilds the outline of lines and compares it with o and with the
// tree lines currently drawn. The adapter's state is left untouched.
func Verify(o *Outline, drawn []string, lines []string, a markup.Adapter) error {
	fresh := build(o.Name, lines, a, o.current, false)
	var diffs []string
	if !slices.Equal(fresh.tree, drawn) {
		diffs = append(diffs, "tree lines")
	}
	if !slices.Equal(fresh.tree, o.tree) {
		diffs = append(diffs, "outline tree lines")
	}
	if !slices.Equal(fresh.nodes, o.nodes) {
		diffs = append(diffs, "nodes")
	}
	if !slices.Equal(fresh.levels, o.levels) {
		diffs = append(diffs, "levels")
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%w: different %s", ErrIndexDrift, strings.Join(diffs, ", "))
	}
	return nil
}
