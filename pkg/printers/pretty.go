// Package printers draws outlines and search results for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/outline"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width truncates headings when positive.
	Width int
	// ShowPos prefixes every node with its tree position.
	ShowPos bool
	// All prints nodes hidden by closed folds.
	All bool
}

// DisableColorUnlessTerminal turns color off when stdout is not a terminal.
func DisableColorUnlessTerminal() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, one, many string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " "+one)
	default:
		_, _ = c.Fprintln(pp.out(), " "+many)
	}
}

func (pp *PrettyPrint) heading(h string) string {
	if pp.Width <= 0 {
		return h
	}
	return truncate.StringWithTail(h, uint(pp.Width), "…")
}

// Tree prints the outline as drawn on surface. Nodes inside closed folds
// are skipped unless All is set.
func (pp *PrettyPrint) Tree(o *outline.Outline, surface buffer.RenderSurface) {
	w := pp.out()
	pp.Title(o.Heading(1))

	if o.Len() == 1 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	cur := color.New(color.FgHiYellow, color.Bold)
	marked := color.New(color.FgRed)
	pos := color.New(color.Faint)
	t := color.New()

	for p := 2; p <= o.Len(); p++ {
		if !pp.All && hidden(surface, p) {
			continue
		}
		if pp.ShowPos {
			_, _ = pos.Fprintf(w, "%4d ", p)
		}
		_, _ = t.Fprint(w, strings.Repeat("  ", o.Level(p)-1))
		_, _ = t.Fprint(w, pp.foldGlyph(o, surface, p).Symbol, " ")

		line := o.Tree(p)
		h := pp.heading(o.Heading(p))
		switch {
		case glyph.IsCurrent(line):
			_, _ = cur.Fprint(w, h)
		default:
			_, _ = t.Fprint(w, h)
		}
		if glyph.IsMarked(line) {
			_, _ = marked.Fprint(w, " ", glyph.Marked.Glyph().Symbol)
		}
		_, _ = t.Fprintln(w, "")
	}
	_, _ = t.Fprintln(w, "")
}

func hidden(surface buffer.RenderSurface, line int) bool {
	if surface == nil || line > surface.Len() {
		return false
	}
	s := surface.FoldClosed(line)
	return s != -1 && s != line
}

func (pp *PrettyPrint) foldGlyph(o *outline.Outline, surface buffer.RenderSurface, p int) glyph.Glyph {
	switch {
	case !o.HasChildren(p):
		return glyph.Leaf.Glyph()
	case surface != nil && surface.FoldClosed(p) == p:
		return glyph.Collapsed.Glyph()
	default:
		return glyph.Opened.Glyph()
	}
}

// Lines prints tree lines as stored, for patches and raw output.
func (pp *PrettyPrint) Lines(from int, lines []string) {
	pos := color.New(color.Faint)
	for i, l := range lines {
		_, _ = pos.Fprintf(pp.out(), "%4d ", from+i)
		_, _ = fmt.Fprintln(pp.out(), l)
	}
}

// JSON writes v as a single line of JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

// Note prints a faint status line.
func (pp *PrettyPrint) Note(format string, args ...any) {
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), format+"\n", args...)
}
