package host

// CursorLocator tracks the cursor line in the document and in the tree so
// the selected node and the editor stay in step.
type CursorLocator interface {
	BodyLine() int
	SetBodyLine(line int)
	TreeLine() int
	SetTreeLine(line int)
}

// Cursor is a CursorLocator with no editor behind it.
type Cursor struct {
	Body int
	Tree int
}

var _ CursorLocator = (*Cursor)(nil)

func (c *Cursor) BodyLine() int        { return max(c.Body, 1) }
func (c *Cursor) SetBodyLine(line int) { c.Body = line }
func (c *Cursor) TreeLine() int        { return max(c.Tree, 1) }
func (c *Cursor) SetTreeLine(line int) { c.Tree = line }
