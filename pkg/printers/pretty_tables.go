package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/outline"
)

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Grep prints grep matches with the path of every matching node.
func (pp *PrettyPrint) Grep(o *outline.Outline, matches []outline.Match) {
	pp.TitleWithCount(o.Heading(1), len(matches), "match", "matches")
	if len(matches) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Node"), bold.Sprint("Line"), bold.Sprint("Hits"), bold.Sprint("Headline"))
	for _, m := range matches {
		tbl.AddRow(m.Pos, m.Line, m.Count, pp.heading(m.UNL))
	}
	tbl.RightAlign(0)
	tbl.RightAlign(1)
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Find prints fuzzy matches, best first.
func (pp *PrettyPrint) Find(o *outline.Outline, matches []app.FindMatch) {
	pp.TitleWithCount(o.Heading(1), len(matches), "match", "matches")
	if len(matches) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Node"), bold.Sprint("Score"), bold.Sprint("Headline"))
	for _, m := range matches {
		tbl.AddRow(m.Pos, m.Score, pp.heading(m.UNL))
	}
	tbl.RightAlign(0)
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Report prints marked nodes grouped by top level section.
func (pp *PrettyPrint) Report(title string, r app.ReportResult) {
	pp.TitleWithCount(title, r.Total, "marked node", "marked nodes")
	if r.Total == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	marked := color.New(color.FgRed)

	for _, sec := range r.Sections {
		tbl := uitable.New()
		tbl.Separator = " "
		for _, it := range sec.Items {
			sym := " "
			h := strings.Repeat("  ", it.Level-1) + pp.heading(it.Heading)
			if it.Marked {
				sym = marked.Sprint(glyph.Marked.Glyph().Symbol)
			}
			tbl.AddRow(y.Sprint(it.Line), sym, h)
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
	pp.NewLine()
}

// Key prints the legend of flag glyphs.
func (pp *PrettyPrint) Key(glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Flag"), bold.Sprint("Meaning"))
	for _, g := range glyfs {
		k := g.Key
		if k == "" {
			k = "-"
		}
		tbl.AddRow(g.Symbol, k, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Fields prints name/value pairs aligned on the names.
func (pp *PrettyPrint) Fields(rows [][2]string) {
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		tbl.AddRow("  "+r[0], faint.Sprint(r[1]))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// List prints one indented item per line.
func (pp *PrettyPrint) List(items []string) {
	if len(items) == 0 {
		pp.none()
		return
	}
	for _, it := range items {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", it)
	}
	pp.NewLine()
}
