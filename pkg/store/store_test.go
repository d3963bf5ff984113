package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OUTLINER_CONFIG_PATH", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "disk", cfg.Clipboard())
	assert.Equal(t, "{{{", cfg.Marker())
	assert.Empty(t, cfg.Markup())
	assert.False(t, cfg.Verify())
	assert.False(t, strings.HasPrefix(cfg.RegistersPath(), "~"))
	assert.True(t, strings.HasSuffix(cfg.RegistersPath(), filepath.Join(".outliner", "registers")))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	registers := filepath.Join(dir, "regs")
	yaml := "registers: " + registers + "\n" +
		"marker: \"<<<\"\n" +
		"markup: rest\n" +
		"verify: true\n" +
		"rstrip:\n  fmr: \" \\t#\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".outliner.yaml"), []byte(yaml), 0o644))
	t.Setenv("OUTLINER_CONFIG_PATH", dir)
	t.Setenv("OUTLINER_CLIPBOARD", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, registers, cfg.RegistersPath())
	assert.Equal(t, "<<<", cfg.Marker())
	assert.Equal(t, "rest", cfg.Markup())
	assert.True(t, cfg.Verify())
	assert.Equal(t, " \t#", cfg.RStrip("fmr"))
	assert.Empty(t, cfg.RStrip("html"))
	assert.Equal(t, "memory", cfg.Clipboard())
}

func TestRegisters(t *testing.T) {
	r := OpenRegisters(t.TempDir())

	got, err := r.Get(DefaultRegister)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, r.Set(DefaultRegister, "A {{{1\nbody"))
	clip := r.Clipboard("a")
	require.NoError(t, clip.Write("B {{{2"))

	got, err = r.Get(DefaultRegister)
	require.NoError(t, err)
	assert.Equal(t, "A {{{1\nbody", got)
	got, err = clip.Read()
	require.NoError(t, err)
	assert.Equal(t, "B {{{2", got)
	assert.Equal(t, []string{"+", "a"}, r.Names())

	// a second handle sees what the first wrote
	again := OpenRegisters(r.basePath)
	got, err = again.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "B {{{2", got)

	require.NoError(t, r.Clear("a"))
	require.NoError(t, r.Clear("a"))
	assert.Equal(t, []string{"+"}, r.Names())
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Zero(t, doc.Len())

	lines := []string{"A {{{1", "", "B {{{2"}
	require.NoError(t, SaveDocument(path, lines))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A {{{1\n\nB {{{2\n", string(raw))

	doc, err = LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, lines, doc.Lines())

	require.NoError(t, os.Chmod(path, 0o600))
	require.NoError(t, SaveDocument(path, lines[:1]))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb\n"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n\n"))
}
