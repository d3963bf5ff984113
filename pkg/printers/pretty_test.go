package printers

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/glyph"
)

func journal(t *testing.T) *app.Session {
	t.Helper()
	color.NoColor = true
	r := app.NewRegistry(nil, nil)
	s, err := r.Open("journal", buffer.New(
		"preamble",
		"A {{{1",
		"a body",
		"B {{{1x",
		"C {{{2",
		"c body",
		"D {{{2",
		"F {{{1",
	), "")
	require.NoError(t, err)
	return s
}

func TestTreeHidesClosedFolds(t *testing.T) {
	s := journal(t)
	var out bytes.Buffer
	pp := PrettyPrint{Out: &out}

	pp.Tree(s.Outline(), s.Tree)

	got := out.String()
	assert.Contains(t, got, "journal\n")
	assert.Contains(t, got, "· A\n")
	assert.Contains(t, got, "▸ B ✘\n")
	assert.Contains(t, got, "· F\n")
	assert.NotContains(t, got, "C")
}

func TestTreeAll(t *testing.T) {
	s := journal(t)
	var out bytes.Buffer
	pp := PrettyPrint{Out: &out, All: true, ShowPos: true}

	pp.Tree(s.Outline(), s.Tree)

	got := out.String()
	assert.Contains(t, got, "   4   · C\n")
	assert.Contains(t, got, "   5   · D\n")
}

func TestTreeTruncates(t *testing.T) {
	color.NoColor = true
	r := app.NewRegistry(nil, nil)
	s, err := r.Open("long", buffer.New("a very long heading indeed {{{1"), "")
	require.NoError(t, err)

	var out bytes.Buffer
	pp := PrettyPrint{Out: &out, Width: 6}
	pp.Tree(s.Outline(), s.Tree)

	assert.Contains(t, out.String(), "· a ver…\n")
}

func TestGrepTable(t *testing.T) {
	s := journal(t)
	m, err := s.Grep([]string{"body"}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	pp := PrettyPrint{Out: &out}
	pp.Grep(s.Outline(), m)

	got := out.String()
	assert.Contains(t, got, "journal - 2 matches\n")
	assert.Contains(t, got, "B -> C")
}

func TestFindNone(t *testing.T) {
	s := journal(t)
	var out bytes.Buffer
	pp := PrettyPrint{Out: &out}
	pp.Find(s.Outline(), s.Find("zzz"))

	assert.Contains(t, out.String(), "journal - 0 matches\n")
	assert.Contains(t, out.String(), " none")
}

func TestReport(t *testing.T) {
	s := journal(t)
	var out bytes.Buffer
	pp := PrettyPrint{Out: &out}
	pp.Report("journal", s.Report())

	got := out.String()
	assert.Contains(t, got, "journal - 1 marked node\n")
	assert.Contains(t, got, "✘")
}

func TestKey(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	pp := PrettyPrint{Out: &out}
	pp.Key(glyph.DefaultGlyphs())

	assert.Contains(t, out.String(), "marked")
	assert.Contains(t, out.String(), "collapsed")
}
