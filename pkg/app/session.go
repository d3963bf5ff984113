package app

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/sahilm/fuzzy"

	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/edit"
	"tableflip.dev/outliner/pkg/fold"
	"tableflip.dev/outliner/pkg/host"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
	"tableflip.dev/outliner/pkg/render"
)

// Session is one open document with its outline and the tree drawn from it.
// Calls must not overlap; sessions are independent of each other.
type Session struct {
	ID     string
	Doc    buffer.DocumentStore
	Tree   buffer.RenderSurface
	Markup markup.Adapter
	Cursor host.CursorLocator
	Sink   host.MessageSink

	outline *outline.Outline
	engine  *edit.Engine
}

func newSession(id string, doc buffer.DocumentStore, a markup.Adapter, clip host.ClipboardStore, sink host.MessageSink) *Session {
	s := &Session{
		ID:     id,
		Doc:    doc,
		Tree:   buffer.NewTree(),
		Markup: a,
		Cursor: &host.Cursor{},
		Sink:   sink,
	}
	s.outline = outline.Build(id, doc.Lines(), a, 1)
	s.engine = edit.New(s.outline, doc, s.Tree, a, clip)
	return s
}

// Outline returns the current index of the document.
func (s *Session) Outline() *outline.Outline { return s.outline }

// SetVerify turns the drift check after every edit on or off.
func (s *Session) SetVerify(v bool) { s.engine.Verify = v }

// SetRand seeds shuffle sorts.
func (s *Session) SetRand(r *rand.Rand) { s.engine.Rand = r }

func (s *Session) rebuild(current int) {
	s.outline = outline.Build(s.ID, s.Doc.Lines(), s.Markup, current)
	s.engine.Outline = s.outline
}

// Update re-indexes the document after it was edited as text and redraws
// the tree. The current node keeps its position, clamped to the new tree.
func (s *Session) Update() render.Patch {
	s.rebuild(s.outline.Current())
	s.Cursor.SetTreeLine(s.outline.Current())
	return render.Render(s.Tree, s.outline.TreeLines())
}

// TreeCreate draws the tree for the first time. Nodes flagged as expanded
// are opened, the rest folded, and the startup node is selected; without
// one the node under the body cursor is.
func (s *Session) TreeCreate() {
	s.rebuild(1)
	s.Tree.SetLines(s.outline.TreeLines())
	current := 0
	if c, err := fold.New(s.outline, s.Doc, s.Markup); err == nil {
		var opened []int
		current, opened = c.Startup()
		z := s.outline.Len()
		fold.Create(s.Tree, 2, z, fold.Flip(s.outline, 2, z, opened))
	}
	if current == 0 {
		current = s.outline.CurrentIndex(s.Cursor.BodyLine())
	}
	s.selectNode(current)
}

func (s *Session) selectNode(pos int) {
	m := s.outline.Mutate(s.Tree)
	m.Unselect()
	m.Select(pos)
	s.Cursor.SetTreeLine(s.outline.Current())
	s.Cursor.SetBodyLine(s.outline.Node(s.outline.Current()))
}

// Select makes pos current and moves the body cursor to its headline.
func (s *Session) Select(pos int) int {
	s.selectNode(pos)
	return s.outline.Current()
}

// SelectLine makes the node containing body line current.
func (s *Session) SelectLine(line int) int {
	s.selectNode(s.outline.CurrentIndex(line))
	s.Cursor.SetBodyLine(line)
	return s.outline.Current()
}

// Target picks the node a command works on: the node containing line when
// line is set, else node, else the current node.
func (s *Session) Target(node, line int) int {
	switch {
	case line > 0:
		return s.SelectLine(line)
	case node > 0:
		return node
	default:
		return s.outline.Current()
	}
}

// Verify compares the maintained outline and drawn tree with a fresh index.
func (s *Session) Verify() error {
	err := outline.Verify(s.outline, s.Tree.Lines(), s.Doc.Lines(), s.Markup)
	if err != nil {
		s.Sink.Error("outline is out of sync with the document", "err", err)
	}
	return err
}

func (s *Session) report(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, outline.ErrIndexDrift) {
		s.Sink.Error(op+": outline is out of sync with the document", "err", err)
	} else {
		s.Sink.Error(op+" failed", "err", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *Session) moved(res edit.MoveResult) {
	s.Cursor.SetTreeLine(res.First)
	s.Cursor.SetBodyLine(res.BodyLine)
}

// Insert adds a headline after pos, or as its first child.
func (s *Session) Insert(pos int, asChild bool) (edit.InsertResult, error) {
	res, err := s.engine.Insert(pos, asChild)
	if err != nil {
		return res, s.report("insert", err)
	}
	s.Cursor.SetTreeLine(res.Pos)
	s.Cursor.SetBodyLine(res.BodyLine)
	return res, nil
}

// Paste inserts the clipboard after pos. Warnings go to the sink.
func (s *Session) Paste(pos int) (edit.PasteResult, error) {
	res, err := s.engine.Paste(pos)
	if err != nil {
		return res, s.report("paste", err)
	}
	for _, w := range res.Warnings {
		s.Sink.Warn(w.String())
	}
	s.Cursor.SetTreeLine(res.First)
	s.Cursor.SetBodyLine(res.BodyLine)
	return res, nil
}

func (s *Session) Copy(start, end int) (edit.CopyResult, error) {
	res, err := s.engine.Copy(start, end)
	return res, s.report("copy", err)
}

func (s *Session) Cut(start, end int) (edit.CutResult, error) {
	res, err := s.engine.Cut(start, end)
	if err != nil {
		return res, s.report("cut", err)
	}
	s.Cursor.SetTreeLine(res.Pos)
	s.Cursor.SetBodyLine(s.outline.Node(res.Pos))
	return res, nil
}

func (s *Session) MoveUp(start, end int) (edit.MoveResult, error) {
	res, err := s.engine.MoveUp(start, end)
	if err != nil {
		return res, s.report("move up", err)
	}
	s.moved(res)
	return res, nil
}

func (s *Session) MoveDown(start, end int) (edit.MoveResult, error) {
	res, err := s.engine.MoveDown(start, end)
	if err != nil {
		return res, s.report("move down", err)
	}
	s.moved(res)
	return res, nil
}

func (s *Session) Right(start, end int) (edit.MoveResult, error) {
	res, err := s.engine.Right(start, end)
	if err != nil {
		return res, s.report("move right", err)
	}
	s.moved(res)
	return res, nil
}

func (s *Session) Left(start, end int) (edit.MoveResult, error) {
	res, err := s.engine.Left(start, end)
	if err != nil {
		return res, s.report("move left", err)
	}
	s.moved(res)
	return res, nil
}

func (s *Session) Mark(start, end int) (int, error) {
	n, err := s.engine.Mark(start, end)
	return n, s.report("mark", err)
}

func (s *Session) Unmark(start, end int) (int, error) {
	n, err := s.engine.Unmark(start, end)
	return n, s.report("unmark", err)
}

// MarkSelected records pos as the node selected when the tree is next
// created.
func (s *Session) MarkSelected(pos int) error {
	return s.report("mark selected", s.engine.MarkSelected(pos))
}

// Sort reorders the siblings of pos, then re-indexes and redraws the tree
// with the sorted node still current.
func (s *Session) Sort(pos int, opts edit.SortOptions) (edit.SortResult, error) {
	res, err := s.engine.Sort(pos, opts)
	if err != nil {
		return res, s.report("sort", err)
	}
	if res.Status != edit.Sorted {
		s.Sink.Info(res.Status.String())
		return res, nil
	}
	s.Update()
	s.SelectLine(res.Line)
	return res, nil
}

// SaveFolds writes the fold state drawn for from..to into the document.
func (s *Session) SaveFolds(from, to int) error {
	c, err := fold.New(s.outline, s.Doc, s.Markup)
	if err != nil {
		return s.report("save folds", err)
	}
	c.Save(s.Tree, from, to)
	return nil
}

// RestoreFolds redraws the fold state of from..to from the document.
func (s *Session) RestoreFolds(from, to int) error {
	c, err := fold.New(s.outline, s.Doc, s.Markup)
	if err != nil {
		return s.report("restore folds", err)
	}
	c.Restore(s.Tree, from, to)
	return nil
}

// CleanupFolds drops expanded flags from nodes without children.
func (s *Session) CleanupFolds() (int, error) {
	c, err := fold.New(s.outline, s.Doc, s.Markup)
	if err != nil {
		return 0, s.report("cleanup folds", err)
	}
	return c.Cleanup(), nil
}

// Grep finds nodes matching every pattern in and and none in not.
func (s *Session) Grep(and, not []string) ([]outline.Match, error) {
	compile := func(pats []string) ([]*regexp.Regexp, error) {
		out := make([]*regexp.Regexp, 0, len(pats))
		for _, p := range pats {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("grep: %w", err)
			}
			out = append(out, re)
		}
		return out, nil
	}
	a, err := compile(and)
	if err != nil {
		return nil, err
	}
	n, err := compile(not)
	if err != nil {
		return nil, err
	}
	return s.outline.Grep(s.Doc.Lines(), a, n), nil
}

// FindMatch is a heading ranked by Find.
type FindMatch struct {
	Pos     int
	Heading string
	Score   int
	UNL     string
}

// Find ranks headings against query, best first.
func (s *Session) Find(query string) []FindMatch {
	o := s.outline
	heads := make([]string, 0, o.Len()-1)
	for p := 2; p <= o.Len(); p++ {
		heads = append(heads, o.Heading(p))
	}
	matches := fuzzy.Find(query, heads)
	out := make([]FindMatch, 0, len(matches))
	for _, m := range matches {
		pos := m.Index + 2
		out = append(out, FindMatch{Pos: pos, Heading: m.Str, Score: m.Score, UNL: o.UNLString(pos)})
	}
	return out
}

// UNL returns the headline path of pos.
func (s *Session) UNL(pos int) string {
	return s.outline.UNLString(min(max(pos, 1), s.outline.Len()))
}
