package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	root := New()

	for _, args := range [][]string{
		{"tree"}, {"show"},
		{"insert"}, {"add"}, {"paste"},
		{"cut"}, {"copy"},
		{"up"}, {"down"}, {"right"}, {"left"},
		{"mark"}, {"unmark"}, {"select"},
		{"sort"},
		{"fold", "save"}, {"fold", "restore"}, {"fold", "cleanup"},
		{"find"}, {"grep"}, {"unl"}, {"report"}, {"verify"}, {"watch"},
		{"key"}, {"info"}, {"mcp"}, {"version"},
	} {
		cmd, rest, err := root.Find(args)
		require.NoError(t, err, "%v", args)
		assert.Empty(t, rest, "%v", args)
		assert.NotSame(t, root, cmd, "%v", args)
	}
}

func TestDocumentArgRequired(t *testing.T) {
	root := New()
	root.SetArgs([]string{"tree"})
	root.SilenceErrors = true
	root.SilenceUsage = true
	assert.Error(t, root.Execute())
}
