package edit

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/outline"
)

var shelf = []string{
	"top",
	"b {{{1",
	"b body",
	"C {{{1",
	"z {{{2",
	"y {{{2",
	"a {{{1",
}

func TestSort(t *testing.T) {
	tests := map[string]struct {
		opts   SortOptions
		want   []string
		groups int
		line   int
	}{
		"case sensitive": {
			want:   []string{"top", "C {{{1", "z {{{2", "y {{{2", "a {{{1", "b {{{1", "b body"},
			groups: 1,
			line:   6,
		},
		"ignore case": {
			opts:   SortOptions{IgnoreCase: true},
			want:   []string{"top", "a {{{1", "b {{{1", "b body", "C {{{1", "z {{{2", "y {{{2"},
			groups: 1,
			line:   3,
		},
		"reverse": {
			opts:   SortOptions{Reverse: true},
			want:   []string{"top", "b {{{1", "b body", "a {{{1", "C {{{1", "z {{{2", "y {{{2"},
			groups: 1,
			line:   2,
		},
		"flip": {
			opts:   SortOptions{Flip: true},
			want:   []string{"top", "a {{{1", "C {{{1", "z {{{2", "y {{{2", "b {{{1", "b body"},
			groups: 1,
			line:   6,
		},
		"deep": {
			opts:   SortOptions{IgnoreCase: true, Deep: true},
			want:   []string{"top", "a {{{1", "b {{{1", "b body", "C {{{1", "y {{{2", "z {{{2"},
			groups: 2,
			line:   3,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := setup(t, shelf...)
			got, err := f.Sort(2, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, Sorted, got.Status)
			assert.Equal(t, tc.groups, got.Groups)
			assert.Equal(t, tc.line, got.Line)
			assert.Equal(t, tc.want, f.doc.Lines())
			assert.Equal(t, "b {{{1", f.doc.Line(got.Line))
		})
	}
}

func TestSortRestKeepsTitles(t *testing.T) {
	tests := map[string]struct {
		lines  []string
		opts   SortOptions
		want   []string
		groups int
		line   int
		levels []int
	}{
		"body runs into next title": {
			lines:  []string{"B", "=", "", "b body", "", "A", "=", "a body"},
			want:   []string{"A", "=", "a body", "", "B", "=", "", "b body", ""},
			groups: 1,
			line:   5,
			levels: []int{1, 1, 1},
		},
		"deep group grows its parent": {
			lines:  []string{"C", "=", "c body", "", "B", "=", "", "Z", "-", "z body", "", "Y", "-", "y body"},
			opts:   SortOptions{Deep: true},
			want:   []string{"B", "=", "", "Y", "-", "y body", "", "Z", "-", "z body", "", "C", "=", "c body", ""},
			groups: 2,
			line:   12,
			levels: []int{1, 1, 2, 2, 1},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := setupMarkup(t, markup.NewRest(), tc.lines...)
			before := f.Outline.Len()
			got, err := f.Sort(2, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, Sorted, got.Status)
			assert.Equal(t, tc.groups, got.Groups)
			assert.Equal(t, tc.want, f.doc.Lines())
			assert.Equal(t, tc.line, got.Line)

			rebuilt := outline.Build("doc", f.doc.Lines(), f.Markup, 1)
			assert.Equal(t, before, rebuilt.Len())
			assert.Equal(t, tc.levels, rebuilt.Levels())
		})
	}
}

func TestSortTracksNode(t *testing.T) {
	f := setup(t, shelf...)
	got, err := f.Sort(3, SortOptions{Deep: true})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Groups)
	assert.Equal(t, 2, got.Line)
	assert.Equal(t, []string{"top", "C {{{1", "y {{{2", "z {{{2", "a {{{1", "b {{{1", "b body"}, f.doc.Lines())

	// nothing nests under z, so only its own group is sorted
	f = setup(t, shelf...)
	got, err = f.Sort(4, SortOptions{Deep: true})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Groups)
	assert.Equal(t, "z {{{2", f.doc.Line(got.Line))
}

func TestSortAlreadySorted(t *testing.T) {
	f := setup(t, shelf...)
	_, err := f.Sort(2, SortOptions{IgnoreCase: true, Deep: true})
	require.NoError(t, err)
	sorted := f.doc.Lines()

	again := setup(t, sorted...)
	got, err := again.Sort(3, SortOptions{IgnoreCase: true, Deep: true})
	require.NoError(t, err)
	assert.Equal(t, AlreadySorted, got.Status)
	assert.Zero(t, got.Groups)
	assert.Equal(t, sorted, again.doc.Lines())
}

func TestSortNothingToSort(t *testing.T) {
	f := setup(t, "A {{{1", "B {{{2")
	got, err := f.Sort(3, SortOptions{})
	require.NoError(t, err)
	assert.Equal(t, NothingToSort, got.Status)
	assert.Equal(t, "nothing to sort", got.Status.String())
	assert.Equal(t, []string{"A {{{1", "B {{{2"}, f.doc.Lines())
}

func TestSortShuffleKeepsLines(t *testing.T) {
	f := setup(t, shelf...)
	f.Rand = rand.New(rand.NewPCG(1, 2))
	_, err := f.Sort(2, SortOptions{Shuffle: true})
	require.NoError(t, err)

	got, want := f.doc.Lines(), slices.Clone(shelf)
	slices.Sort(got)
	slices.Sort(want)
	assert.Equal(t, want, got)
	assert.Equal(t, "top", f.doc.Line(1))
}

func TestSortRejectsRoot(t *testing.T) {
	f := setup(t, shelf...)
	_, err := f.Sort(1, SortOptions{})
	require.ErrorIs(t, err, outline.ErrInvalidSelection)
}
