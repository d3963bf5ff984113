package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

// positions: 2 A, 3 B, 4 C, 5 D
var sections = []string{
	"A",
	"=",
	"a body",
	"",
	"B",
	"=",
	"",
	"C",
	"-",
	"c body",
	"",
	"D",
	"=",
}

func TestRestEdits(t *testing.T) {
	tests := map[string]struct {
		run  func(f *fixture) error
		want []string
	}{
		"insert first child": {
			run: func(f *fixture) error {
				_, err := f.Insert(3, false)
				return err
			},
			want: []string{"A", "=", "a body", "", "B", "=", "", "NewHeadline", "-----------", "", "C", "-", "c body", "", "D", "="},
		},
		"paste promotes": {
			run: func(f *fixture) error {
				if _, err := f.Copy(4, 4); err != nil {
					return err
				}
				_, err := f.Paste(2)
				return err
			},
			want: []string{"A", "=", "a body", "", "C", "=", "c body", "", "B", "=", "", "C", "-", "c body", "", "D", "="},
		},
		"cut": {
			run: func(f *fixture) error {
				_, err := f.Cut(4, 4)
				return err
			},
			want: []string{"A", "=", "a body", "", "B", "=", "", "D", "="},
		},
		"up out of parent": {
			run: func(f *fixture) error {
				_, err := f.MoveUp(4, 4)
				return err
			},
			want: []string{"A", "=", "a body", "", "C", "=", "c body", "", "B", "=", "", "D", "="},
		},
		"down into open parent": {
			run: func(f *fixture) error {
				_, err := f.MoveDown(2, 2)
				return err
			},
			want: []string{"B", "=", "", "A", "-", "a body", "", "C", "-", "c body", "", "D", "="},
		},
		"down past last sibling": {
			run: func(f *fixture) error {
				_, err := f.MoveDown(4, 4)
				return err
			},
			want: []string{"A", "=", "a body", "", "B", "=", "", "D", "=", "", "C", "=", "c body", ""},
		},
		"right adds overline": {
			run: func(f *fixture) error {
				_, err := f.Right(3, 3)
				return err
			},
			want: []string{"A", "=", "a body", "", "B", "-", "", "=", "C", "=", "c body", "", "D", "="},
		},
		"left": {
			run: func(f *fixture) error {
				_, err := f.Left(4, 4)
				return err
			},
			want: []string{"A", "=", "a body", "", "B", "=", "", "C", "=", "c body", "", "D", "="},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := setupMarkup(t, markup.NewRest(), sections...)
			require.NoError(t, tc.run(f))
			assert.Equal(t, tc.want, f.doc.Lines())
			require.NoError(t, outline.Verify(f.Outline, f.tree.Lines(), f.doc.Lines(), f.Markup))
		})
	}
}

func TestRestSortRebuilds(t *testing.T) {
	f := setupMarkup(t, markup.NewRest(), sections...)
	got, err := f.Sort(2, SortOptions{Reverse: true})
	require.NoError(t, err)
	assert.Equal(t, Sorted, got.Status)
	assert.Equal(t, []string{"D", "=", "", "B", "=", "", "C", "-", "c body", "", "A", "=", "a body", ""}, f.doc.Lines())

	rebuilt := outline.Build("doc", f.doc.Lines(), f.Markup, 1)
	assert.Equal(t, []int{1, 1, 1, 2, 1}, rebuilt.Levels())
	assert.Equal(t, "A", rebuilt.Heading(5))
}
