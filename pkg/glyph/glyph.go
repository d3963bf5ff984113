package glyph

// Glyph describes a flag character stored in a document headline and the
// symbol used when the tree is printed.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 5)

	g = append(g, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "marked",
	}, Glyph{
		Key:     "o",
		Symbol:  "▾",
		Meaning: "expanded",
	}, Glyph{
		Key:     "=",
		Symbol:  "●",
		Meaning: "current node",
	}, Glyph{
		Key:     "",
		Symbol:  "▸",
		Meaning: "collapsed",
	}, Glyph{
		Key:     "",
		Symbol:  "·",
		Meaning: "leaf",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Flag is a glyph that can follow the level number of a fold marker.
// Flags are written in the order Marked, Opened, Current.
type Flag int

const (
	Marked Flag = iota
	Opened
	Current
	Collapsed
	Leaf
)

func (f Flag) Glyph() Glyph {
	return DefaultGlyphs()[f]
}

func (f Flag) String() string {
	return f.Glyph().String()
}

// Byte returns the flag character as written in a document.
func (f Flag) Byte() byte {
	if k := f.Glyph().Key; k != "" {
		return k[0]
	}
	return 0
}
