package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

func TestMarkUnmark(t *testing.T) {
	f := setup(t, journal...)

	n, err := f.Mark(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "A {{{1x", f.doc.Line(2))
	assert.Equal(t, "B {{{1x", f.doc.Line(4))
	assert.True(t, glyph.IsMarked(f.tree.Line(2)))
	assert.True(t, glyph.IsMarked(f.Outline.Tree(3)))

	n, err = f.Mark(3, 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = f.Unmark(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, journal, f.doc.Lines())
	assert.False(t, glyph.IsMarked(f.tree.Line(3)))
}

func TestUnmarkStripsRepeatedFlags(t *testing.T) {
	f := setup(t, "A {{{1xx", "body", "B {{{1")
	require.True(t, glyph.IsMarked(f.Outline.Tree(2)))

	n, err := f.Unmark(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"A {{{1", "body", "B {{{1"}, f.doc.Lines())
}

func TestMarkRejectsRoot(t *testing.T) {
	f := setup(t, journal...)
	_, err := f.Mark(1, 2)
	require.ErrorIs(t, err, outline.ErrInvalidSelection)
	assert.Equal(t, journal, f.doc.Lines())
}

func TestMarkSelected(t *testing.T) {
	f := setup(t, "A {{{1xo=", "B {{{1o", "C {{{2", "D {{{1=xo")

	require.NoError(t, f.MarkSelected(3))
	assert.Equal(t, []string{"A {{{1xo", "B {{{1o=", "C {{{2", "D {{{1"}, f.doc.Lines())

	require.NoError(t, f.MarkSelected(3))
	assert.Equal(t, "B {{{1o=", f.doc.Line(2))

	require.NoError(t, f.MarkSelected(4))
	assert.Equal(t, []string{"A {{{1xo", "B {{{1o", "C {{{2=", "D {{{1"}, f.doc.Lines())

	require.NoError(t, f.MarkSelected(1))
	assert.Equal(t, []string{"A {{{1xo", "B {{{1o", "C {{{2", "D {{{1"}, f.doc.Lines())
}

func TestFlagsNeedFlaggingMarkup(t *testing.T) {
	a := markup.Asterisk{}
	doc := buffer.New("* A", "** B")
	o := outline.Build("doc", doc.Lines(), a, 1)
	e := New(o, doc, nil, a, nil)

	_, err := e.Mark(2, 2)
	require.ErrorIs(t, err, outline.ErrUnsupported)
	_, err = e.Unmark(2, 2)
	require.ErrorIs(t, err, outline.ErrUnsupported)
	require.ErrorIs(t, e.MarkSelected(2), outline.ErrUnsupported)
}

func TestEditsWithoutTreeSurface(t *testing.T) {
	a := markup.Asterisk{}
	doc := buffer.New("* A", "** B", "* C")
	o := outline.Build("doc", doc.Lines(), a, 1)
	e := New(o, doc, nil, a, nil)
	e.Verify = true

	got, err := e.Insert(3, false)
	require.NoError(t, err)
	assert.Equal(t, InsertResult{Pos: 4, BodyLine: 3, Column: 4}, got)
	assert.Equal(t, []string{"* A", "** B", "** NewHeadline", "", "* C"}, doc.Lines())

	_, err = e.MoveUp(5, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"* A", "** B", "** C", "** NewHeadline", ""}, doc.Lines())
}
