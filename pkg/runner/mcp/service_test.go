package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/edit"
	"tableflip.dev/outliner/pkg/store"
)

func newTestService(t *testing.T, text string) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "plan.txt"), []byte(text), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return NewService(&app.Service{Config: store.MemoryConfig()}, root), root
}

func read(t *testing.T, root string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, "plan.txt"))
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	return string(b)
}

func TestServiceOutline(t *testing.T) {
	svc, _ := newTestService(t, "A {{{1\nB {{{2x\nC {{{1\n")

	doc, err := svc.Outline(context.Background(), "plan.txt")
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if doc.Count != 3 {
		t.Fatalf("expected 3 nodes, got %d", doc.Count)
	}
	if doc.Markup != "fmr" {
		t.Fatalf("expected fmr markup, got %s", doc.Markup)
	}
	b := doc.Nodes[1]
	if b.Pos != 3 || b.Level != 2 || b.Heading != "B" || !b.Marked {
		t.Fatalf("unexpected node %+v", b)
	}
}

func TestServiceNode(t *testing.T) {
	svc, _ := newTestService(t, "A {{{1\nbody\nB {{{2\n")

	node, err := svc.Node(context.Background(), "plan.txt", 2)
	if err != nil {
		t.Fatalf("Node failed: %v", err)
	}
	if got := strings.Join(node.Body, "|"); got != "A {{{1|body" {
		t.Fatalf("unexpected body %q", got)
	}
	if got := strings.Join(node.UNL, "/"); got != "A" {
		t.Fatalf("unexpected unl %q", got)
	}

	if _, err := svc.Node(context.Background(), "plan.txt", 9); err == nil {
		t.Fatalf("expected an error for a missing node")
	}
}

func TestServiceRejectsOutsideRoot(t *testing.T) {
	svc, _ := newTestService(t, "A {{{1\n")

	_, err := svc.Outline(context.Background(), "../elsewhere.txt")
	if !errors.Is(err, ErrOutsideRoot) {
		t.Fatalf("expected ErrOutsideRoot, got %v", err)
	}
}

func TestServiceMoveSaves(t *testing.T) {
	svc, root := newTestService(t, "A {{{1\nB {{{1\n")
	ctx := context.Background()

	if _, err := svc.Move(ctx, RangeOptions{Path: "plan.txt", Pos: 3}, "up"); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if got := read(t, root); got != "B {{{1\nA {{{1\n" {
		t.Fatalf("unexpected document %q", got)
	}

	if _, err := svc.Move(ctx, RangeOptions{Path: "plan.txt", Pos: 2}, "up"); err == nil {
		t.Fatalf("expected moving the first node up to fail")
	}
}

func TestServiceCutPaste(t *testing.T) {
	svc, root := newTestService(t, "A {{{1\nB {{{1\nC {{{1\n")
	ctx := context.Background()

	if _, err := svc.Cut(ctx, RangeOptions{Path: "plan.txt", Pos: 2}); err != nil {
		t.Fatalf("Cut failed: %v", err)
	}
	doc, warnings, err := svc.Paste(ctx, "plan.txt", 3)
	if err != nil {
		t.Fatalf("Paste failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
	if doc.Nodes[2].Heading != "A" {
		t.Fatalf("expected A last, got %+v", doc.Nodes)
	}
	if got := read(t, root); got != "B {{{1\nC {{{1\nA {{{1\n" {
		t.Fatalf("unexpected document %q", got)
	}
}

func TestServicePicksUpExternalEdits(t *testing.T) {
	svc, root := newTestService(t, "A {{{1\n")
	ctx := context.Background()

	if _, err := svc.Outline(ctx, "plan.txt"); err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "plan.txt"), []byte("A {{{1\nB {{{1\n"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	doc, err := svc.Outline(ctx, "plan.txt")
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if doc.Count != 2 {
		t.Fatalf("expected 2 nodes after the edit, got %d", doc.Count)
	}

	docs, err := svc.Documents(ctx)
	if err != nil {
		t.Fatalf("Documents failed: %v", err)
	}
	if len(docs) != 1 || docs[0] != "plan.txt" {
		t.Fatalf("unexpected documents %v", docs)
	}
}

func TestServiceSortAndMark(t *testing.T) {
	svc, root := newTestService(t, "b {{{1\na {{{1\n")
	ctx := context.Background()

	_, status, err := svc.Sort(ctx, "plan.txt", 2, edit.SortOptions{})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if status != "sorted" {
		t.Fatalf("expected sorted, got %s", status)
	}
	if _, err := svc.Mark(ctx, RangeOptions{Path: "plan.txt", Pos: 2}, false); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if got := read(t, root); got != "a {{{1x\nb {{{1\n" {
		t.Fatalf("unexpected document %q", got)
	}

	res, err := svc.Report(ctx, "plan.txt")
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if res.Total != 1 {
		t.Fatalf("expected 1 marked node, got %d", res.Total)
	}
}
