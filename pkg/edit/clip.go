package edit

import (
	"fmt"
	"strings"

	"tableflip.dev/outliner/pkg/markup"
)

// Copy puts the document lines of start..end, with the subtree of the last
// selected node, on the clipboard.
func (e *Engine) Copy(start, end int) (CopyResult, error) {
	ln1, ln2, err := e.Outline.Resolve(start, end)
	if err != nil {
		return CopyResult{}, err
	}
	return e.copy(ln1, ln2)
}

func (e *Engine) copy(ln1, ln2 int) (CopyResult, error) {
	b1, b2 := e.Outline.Node(ln1), e.bodyEnd(ln2)
	res := CopyResult{
		Text:      strings.Join(e.Doc.Range(b1, b2), "\n"),
		BodyFirst: b1,
		BodyLast:  b2,
	}
	if e.Clipboard == nil {
		return res, nil
	}
	if err := e.Clipboard.Write(res.Text); err != nil {
		return CopyResult{}, fmt.Errorf("writing clipboard: %w", err)
	}
	return res, nil
}

// Cut copies start..end and then removes those nodes. The node before the
// removed range becomes current.
func (e *Engine) Cut(start, end int) (CutResult, error) {
	o := e.Outline
	ln1, ln2, err := o.Resolve(start, end)
	if err != nil {
		return CutResult{}, err
	}
	c, err := e.copy(ln1, ln2)
	if err != nil {
		return CutResult{}, err
	}

	m := e.mutate()
	m.Unselect()
	e.Doc.Splice(c.BodyFirst, c.BodyLast, nil)
	m.Remove(ln1, ln2)
	m.ShiftNodes(ln1, o.Len(), -(c.BodyLast - c.BodyFirst + 1))
	e.normalize(markup.Edit{Kind: markup.EditCut, CutPos: ln1 - 1, CutLine: c.BodyFirst - 1})
	m.Select(ln1 - 1)

	return CutResult{CopyResult: c, Pos: ln1 - 1}, e.verify()
}
