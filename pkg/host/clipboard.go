// Package host holds the collaborators an outline session talks to: where
// clipboard text lives, where messages go and where the cursors are.
package host

import (
	"sync"

	"github.com/atotto/clipboard"
)

// ClipboardStore holds the text cut, copied and pasted between nodes.
type ClipboardStore interface {
	Read() (string, error)
	Write(text string) error
}

// MemoryClipboard keeps clipboard text for the life of the process.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

var _ ClipboardStore = (*MemoryClipboard)(nil)

func (c *MemoryClipboard) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

// SystemClipboard is the desktop clipboard.
type SystemClipboard struct{}

var _ ClipboardStore = SystemClipboard{}

func (SystemClipboard) Read() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) Write(text string) error { return clipboard.WriteAll(text) }

// SystemClipboardAvailable reports whether a clipboard utility was found.
func SystemClipboardAvailable() bool { return !clipboard.Unsupported }
