package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeLine(t *testing.T) {
	line := TreeLine(3, true, "heading")
	assert.Equal(t, " x. . |heading", line)
	assert.Equal(t, 3, Level(line))
	assert.Equal(t, "heading", Heading(line))
	assert.True(t, IsMarked(line))
	assert.False(t, IsCurrent(line))

	line = Stamp(line, true)
	assert.Equal(t, "=x. . |heading", line)
	assert.True(t, IsCurrent(line))

	line = SetMarked(line, false)
	assert.False(t, IsMarked(line))

	assert.Equal(t, "= . . . |heading", ChangeLevel(line, 1))
	assert.Equal(t, "= |heading", ChangeLevel(line, -2))
}

func TestRootLine(t *testing.T) {
	root := RootLine("notes.md")
	assert.Equal(t, 0, Level(root))
	assert.Equal(t, "notes.md", Heading(root))
}

func TestHeadingKeepsSeparators(t *testing.T) {
	assert.Equal(t, "a|b", Heading(TreeLine(1, false, "a|b")))
}

func TestFlags(t *testing.T) {
	assert.Equal(t, byte('x'), Marked.Byte())
	assert.Equal(t, byte('o'), Opened.Byte())
	assert.Equal(t, byte('='), Current.Byte())
	for _, g := range DefaultGlyphs() {
		assert.NotEmpty(t, g.Symbol)
		assert.NotEmpty(t, g.Meaning)
	}
}
