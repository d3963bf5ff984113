// Package key provides the runner that prints the flag legend.
package key

import (
	"context"

	"tableflip.dev/outliner/pkg/glyph"
	"tableflip.dev/outliner/pkg/printers"
)

// Key lists the flags a headline can carry, with the symbol each is drawn
// with in tree output.
type Key struct {
	JSON    bool
	Printer printers.PrettyPrint
}

func (k *Key) Do(_ context.Context) error {
	glyphs := glyph.DefaultGlyphs()
	if k.JSON {
		return k.Printer.JSON(glyphs)
	}
	k.Printer.Title("Flags")
	k.Printer.Key(glyphs)
	k.Printer.Note("Flags follow the level of a fold marker, in the order %s%s%s.",
		string(glyph.Marked.Byte()), string(glyph.Opened.Byte()), string(glyph.Current.Byte()))
	return nil
}
