package buffer

import (
	"reflect"
	"testing"
)

func TestMemorySplice(t *testing.T) {
	tests := map[string]struct {
		from, to int
		lines    []string
		want     []string
	}{
		"replace": {
			from: 2, to: 3,
			lines: []string{"x"},
			want:  []string{"a", "x", "d"},
		},
		"insert before": {
			from: 2, to: 1,
			lines: []string{"x", "y"},
			want:  []string{"a", "x", "y", "b", "c", "d"},
		},
		"append past end": {
			from: 9, to: 9,
			lines: []string{"e"},
			want:  []string{"a", "b", "c", "d", "e"},
		},
		"delete": {
			from: 1, to: 4,
			want: []string{},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := New("a", "b", "c", "d")
			m.Splice(tc.from, tc.to, tc.lines)
			if got := m.Lines(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMemoryBounds(t *testing.T) {
	m := New("a", "b")
	if got := m.Line(0); got != "" {
		t.Errorf("line 0: got %q", got)
	}
	if got := m.Line(3); got != "" {
		t.Errorf("line 3: got %q", got)
	}
	m.SetLine(5, "z")
	if got := m.Range(0, 10); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("range: got %q", got)
	}
	lines := m.Lines()
	lines[0] = "changed"
	if m.Line(1) != "a" {
		t.Error("Lines must return a copy")
	}
}

func tree() *Tree {
	return NewTree(
		"  doc",
		"  |A",
		"  . |B",
		"  . . |C",
		"  |D",
	)
}

func TestTreeFolds(t *testing.T) {
	tr := tree()
	if got := tr.FoldClosed(3); got != -1 {
		t.Fatalf("nothing closed yet, got %d", got)
	}

	tr.CloseFold(4)
	if got := tr.FoldClosed(4); got != 3 {
		t.Fatalf("inner fold: got %d", got)
	}
	if got := tr.FoldClosedEnd(4); got != 4 {
		t.Fatalf("inner fold end: got %d", got)
	}

	tr.CloseFold(3)
	if got := tr.FoldClosed(4); got != 2 {
		t.Fatalf("outer fold: got %d", got)
	}
	if tr.Visible(3) || !tr.Visible(2) || !tr.Visible(5) {
		t.Fatal("closed fold should hide its body only")
	}

	tr.OpenFold(4)
	if got := tr.FoldClosed(4); got != 3 {
		t.Fatalf("after opening outer: got %d", got)
	}

	tr.OpenAll(2, 5)
	if got := tr.FoldClosed(4); got != -1 {
		t.Fatalf("after open all: got %d", got)
	}
}

func TestTreeLeafDoesNotFold(t *testing.T) {
	tr := tree()
	tr.CloseFold(5)
	if got := tr.FoldClosed(5); got != -1 {
		t.Fatalf("leaf folded at %d", got)
	}
}

func TestTreeSpliceKeepsFolds(t *testing.T) {
	tr := tree()
	tr.CloseFold(3)
	tr.Splice(2, 1, []string{"  |new"})
	if got := tr.FoldClosed(5); got != 4 {
		t.Fatalf("fold should shift with its line, got %d", got)
	}
	if tr.Len() != 6 {
		t.Fatalf("len: got %d", tr.Len())
	}
}
