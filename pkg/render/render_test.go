package render

import (
	"reflect"
	"testing"

	"tableflip.dev/outliner/pkg/buffer"
)

func TestDiff(t *testing.T) {
	prev := []string{"a", "b", "c", "d"}

	tests := map[string]struct {
		next []string
		want Patch
	}{
		"unchanged": {
			next: []string{"a", "b", "c", "d"},
			want: Patch{Kind: None},
		},
		"one line": {
			next: []string{"a", "B", "c", "d"},
			want: Patch{Kind: Line, From: 2, Lines: []string{"B"}},
		},
		"two lines": {
			next: []string{"a", "B", "c", "D"},
			want: Patch{Kind: Suffix, From: 2, Lines: []string{"B", "c", "D"}},
		},
		"length": {
			next: []string{"a", "b", "c"},
			want: Patch{Kind: Full, From: 1, Lines: []string{"a", "b", "c"}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Diff(prev, tc.next); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestRenderReachesTarget(t *testing.T) {
	targets := [][]string{
		{"a", "b", "c"},
		{"a", "x", "c"},
		{"y", "x", "z"},
		{"y"},
		{"y", "1", "2", "3"},
	}
	s := buffer.NewTree("a", "b", "c")
	for _, next := range targets {
		Render(s, next)
		if !reflect.DeepEqual(s.Lines(), next) {
			t.Fatalf("surface %q, want %q", s.Lines(), next)
		}
	}
}
