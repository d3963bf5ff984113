package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/edit"
	"tableflip.dev/outliner/pkg/host"
	"tableflip.dev/outliner/pkg/outline"
	"tableflip.dev/outliner/pkg/render"
)

func open(t *testing.T, id string, lines ...string) (*Session, *host.RecordingSink, *host.MemoryClipboard) {
	t.Helper()
	sink := &host.RecordingSink{}
	clip := &host.MemoryClipboard{}
	r := NewRegistry(clip, sink)
	r.Verify = true
	s, err := r.Open(id, buffer.New(lines...), "")
	require.NoError(t, err)
	return s, sink, clip
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(nil, nil)

	a, err := r.Open("notes.md", buffer.New("# A", "text"), "")
	require.NoError(t, err)
	assert.Equal(t, "markdown", a.Markup.Name())

	b, err := r.Open("notes.txt", buffer.New("* A"), "org")
	require.NoError(t, err)
	assert.Equal(t, "viki", b.Markup.Name())

	again, err := r.Open("notes.md", buffer.New(), "")
	require.NoError(t, err)
	assert.Same(t, a, again)
	assert.Equal(t, []string{"notes.md", "notes.txt"}, r.IDs())

	got, err := r.Get("notes.txt")
	require.NoError(t, err)
	assert.Same(t, b, got)

	require.NoError(t, r.Close("notes.txt"))
	_, err = r.Get("notes.txt")
	require.ErrorIs(t, err, ErrNotOpen)
	require.ErrorIs(t, r.Close("notes.txt"), ErrNotOpen)

	_, err = r.Open("x", buffer.New(), "troff")
	require.Error(t, err)
}

func TestTreeCreate(t *testing.T) {
	s, _, _ := open(t, "doc", "A {{{1o", "B {{{2=", "C {{{1", "D {{{2")

	assert.Equal(t, 3, s.Outline().Current())
	assert.Equal(t, 3, s.Cursor.TreeLine())
	assert.Equal(t, 2, s.Cursor.BodyLine())
	assert.Equal(t, -1, s.Tree.FoldClosed(3))
	assert.Equal(t, 4, s.Tree.FoldClosed(5))
	require.NoError(t, s.Verify())
}

func TestTreeCreateFallsBackToCursor(t *testing.T) {
	r := NewRegistry(nil, nil)
	doc := buffer.New("A {{{1", "a", "B {{{1", "b")
	s := newSession("doc", doc, r.Markups.ForFile("doc", r.Options), r.Clipboard, r.Sink)
	s.Cursor.SetBodyLine(4)
	s.TreeCreate()
	assert.Equal(t, 3, s.Outline().Current())
}

func TestUpdate(t *testing.T) {
	s, _, _ := open(t, "doc", "A {{{1", "B {{{1")
	require.Equal(t, 2, s.Outline().Current())

	s.Doc.SetLine(1, "Alpha {{{1")
	p := s.Update()
	assert.Equal(t, render.Line, p.Kind)
	assert.Equal(t, 2, p.From)
	assert.Equal(t, "Alpha", s.Outline().Heading(2))

	s.Doc.Append("C {{{1")
	s.Cursor.SetBodyLine(3)
	p = s.Update()
	assert.Equal(t, render.Full, p.Kind)
	assert.Equal(t, 2, s.Outline().Current(), "current node is kept, not taken from the cursor")
	assert.Equal(t, 4, s.SelectLine(3))
	require.NoError(t, s.Verify())
}

func TestUpdateKeepsCurrent(t *testing.T) {
	s, _, _ := open(t, "doc", "A {{{1", "B {{{1", "C {{{1")
	require.Equal(t, 4, s.Select(4))
	s.Cursor.SetBodyLine(1)

	s.Doc.SetLine(2, "Bee {{{1")
	s.Update()
	assert.Equal(t, 4, s.Outline().Current())
	assert.Equal(t, 4, s.Cursor.TreeLine())
	require.NoError(t, s.Verify())

	s.Doc.SetLines([]string{"A {{{1"})
	s.Update()
	assert.Equal(t, 2, s.Outline().Current(), "clamped to the last node")
	require.NoError(t, s.Verify())
}

func TestEditsStayInSync(t *testing.T) {
	s, sink, _ := open(t, "doc", "A {{{1", "a", "B {{{1", "C {{{2", "D {{{1")

	ins, err := s.Insert(3, false)
	require.NoError(t, err)
	assert.Equal(t, 5, ins.Pos, "folded node is skipped")

	up, err := s.MoveUp(ins.Pos, ins.Pos)
	require.NoError(t, err)
	assert.Equal(t, 3, up.First)

	_, err = s.Right(3, 3)
	require.NoError(t, err)
	_, err = s.Left(3, 3)
	require.NoError(t, err)
	_, err = s.Copy(4, 4)
	require.NoError(t, err)
	_, err = s.Paste(2)
	require.NoError(t, err)
	_, err = s.Cut(2, 2)
	require.NoError(t, err)

	require.NoError(t, s.Verify())
	assert.Empty(t, sink.Messages)
	assert.Equal(t, s.Outline().Current(), s.Cursor.TreeLine())
}

func TestErrorsAndWarningsReachSink(t *testing.T) {
	s, sink, clip := open(t, "doc", "A {{{1", "B {{{1")

	_, err := s.MoveUp(2, 2)
	require.ErrorIs(t, err, outline.ErrCannotMove)

	require.NoError(t, clip.Write("X {{{1\nY {{{3"))
	_, err = s.Paste(3)
	require.NoError(t, err)

	assert.Equal(t, []string{"error", "warn"}, sink.Levels())
	require.NoError(t, s.Verify())
}

func TestSortReindexes(t *testing.T) {
	s, _, _ := open(t, "shelf", "b {{{1", "C {{{1", "a {{{1")
	require.Equal(t, 2, s.Outline().Current())

	res, err := s.Sort(2, edit.SortOptions{IgnoreCase: true})
	require.NoError(t, err)
	assert.Equal(t, edit.Sorted, res.Status)
	assert.Equal(t, []string{"a {{{1", "b {{{1", "C {{{1"}, s.Doc.Lines())
	assert.Equal(t, 3, s.Outline().Current())
	assert.Equal(t, "b", s.Outline().Heading(3))
	require.NoError(t, s.Verify())

	res, err = s.Sort(3, edit.SortOptions{IgnoreCase: true})
	require.NoError(t, err)
	assert.Equal(t, edit.AlreadySorted, res.Status)
}

func TestGrepFindUNL(t *testing.T) {
	s, _, _ := open(t, "doc",
		"Alpha {{{1", "todo one",
		"Beta {{{2", "todo two done",
		"Gamma {{{1")

	got, err := s.Grep([]string{"todo"}, []string{"done"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, outline.Match{Pos: 2, Count: 1, Line: 2, UNL: "Alpha"}, got[0])

	_, err = s.Grep([]string{"("}, nil)
	require.Error(t, err)

	found := s.Find("bta")
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].Pos)
	assert.Equal(t, "Alpha -> Beta", found[0].UNL)

	assert.Equal(t, "top-of-file", s.UNL(1))
	assert.Equal(t, "Gamma", s.UNL(4))
}

func TestFolds(t *testing.T) {
	s, _, _ := open(t, "doc", "A {{{1", "B {{{2", "C {{{1o")
	require.Equal(t, 2, s.Tree.FoldClosed(3))

	s.Tree.OpenFold(2)
	require.NoError(t, s.SaveFolds(2, 4))
	assert.Equal(t, "A {{{1o", s.Doc.Line(1))

	n, err := s.CleanupFolds()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "C {{{1", s.Doc.Line(3))

	s.Tree.CloseFold(2)
	require.NoError(t, s.RestoreFolds(2, 4))
	assert.Equal(t, -1, s.Tree.FoldClosed(3))
}

func TestReport(t *testing.T) {
	s, _, _ := open(t, "doc", "A {{{1", "B {{{2x", "C {{{3", "D {{{1", "E {{{2x")

	got := s.Report()
	assert.Equal(t, 5, got.Nodes)
	assert.Equal(t, 2, got.Total)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "A", got.Sections[0].Heading)
	assert.Equal(t, []ReportItem{
		{Pos: 2, Level: 1, Heading: "A", Line: 1},
		{Pos: 3, Level: 2, Heading: "B", Marked: true, Line: 2},
	}, got.Sections[0].Items)
	assert.Equal(t, "D", got.Sections[1].Heading)
}

type fakeConfig struct {
	registers string
	clipboard string
	markup    string
	strip     map[string]string
}

func (f *fakeConfig) RegistersPath() string       { return f.registers }
func (f *fakeConfig) Clipboard() string           { return f.clipboard }
func (f *fakeConfig) Marker() string              { return "{{{" }
func (f *fakeConfig) Markup() string              { return f.markup }
func (f *fakeConfig) RStrip(markup string) string { return f.strip[markup] }
func (f *fakeConfig) Verify() bool                { return true }

func TestServiceOpenEditSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.txt")
	require.NoError(t, os.WriteFile(path, []byte("A {{{1\nB {{{1\n"), 0o644))

	svc := &Service{
		Config: &fakeConfig{registers: filepath.Join(dir, "registers"), clipboard: "disk"},
		Sink:   &host.RecordingSink{},
	}
	ctx := context.Background()

	s, err := svc.Open(ctx, path, "")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Outline().Len())

	_, err = s.Cut(3, 3)
	require.NoError(t, err)
	require.NoError(t, svc.Save(ctx, s))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A {{{1\n", string(b))

	// The cut text survives in the disk register for the next process.
	other := &Service{Config: svc.Config}
	clip, err := other.Clipboard()
	require.NoError(t, err)
	text, err := clip.Read()
	require.NoError(t, err)
	assert.Equal(t, "B {{{1", text)

	again, err := svc.Open(ctx, path, "")
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestServiceRStrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("# setup # {{{1\n"), 0o644))

	svc := &Service{Config: &fakeConfig{clipboard: "memory", strip: map[string]string{"fmr": "# \t"}}}
	s, err := svc.Open(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "# setup", s.Outline().Heading(2))
}

func TestServiceReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.txt")
	require.NoError(t, os.WriteFile(path, []byte("A {{{1\n"), 0o644))

	svc := &Service{Config: &fakeConfig{clipboard: "memory"}}
	ctx := context.Background()
	s, err := svc.Open(ctx, path, "")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("A {{{1\nB {{{1\n"), 0o644))
	p, err := svc.Reload(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, render.Full, p.Kind)
	assert.Equal(t, 3, s.Outline().Len())
}

func TestServiceUnknownClipboard(t *testing.T) {
	svc := &Service{Config: &fakeConfig{clipboard: "carrier-pigeon"}}
	_, err := svc.Clipboard()
	assert.ErrorIs(t, err, ErrUnknownClipboard)

	_, err = (&Service{}).Registry()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestNodesAndTarget(t *testing.T) {
	s, _, _ := open(t, "doc", "A {{{1", "a body", "B {{{2x", "C {{{1")

	nodes := s.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "A", nodes[0].Heading)
	assert.Equal(t, 1, nodes[0].Line)
	assert.True(t, nodes[0].Children)
	assert.True(t, nodes[0].Folded)
	assert.Equal(t, 3, nodes[1].Pos)
	assert.Equal(t, 2, nodes[1].Level)
	assert.Equal(t, 3, nodes[1].Line)
	assert.True(t, nodes[1].Marked)
	assert.False(t, nodes[1].Folded)
	assert.False(t, nodes[2].Children)

	assert.Equal(t, 4, s.Target(4, 0))
	assert.Equal(t, 3, s.Target(0, 3))
	assert.Equal(t, 3, s.Target(0, 0))
	assert.Equal(t, 2, s.Target(0, 2))
}
