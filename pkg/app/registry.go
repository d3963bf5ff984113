// Package app keeps the open documents of an outliner and the sessions that
// edit them, so commands and watchers share one way of doing things.
package app

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"tableflip.dev/outliner/pkg/buffer"
	"tableflip.dev/outliner/pkg/host"
	"tableflip.dev/outliner/pkg/markup"
)

var ErrNotOpen = errors.New("app: document is not open")

// Registry holds the open sessions, keyed by document id. The id is usually
// the document's file name and picks the markup when none is forced.
type Registry struct {
	Markups *markup.Registry
	Options markup.Options
	// RStrip overrides Options.RStrip per markup name.
	RStrip    map[string]string
	Clipboard host.ClipboardStore
	Sink      host.MessageSink
	// Verify turns on the drift check after every edit in new sessions.
	Verify bool

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry returns an empty registry. A nil clipboard keeps clipboard
// text in memory; a nil sink discards messages.
func NewRegistry(clip host.ClipboardStore, sink host.MessageSink) *Registry {
	if clip == nil {
		clip = &host.MemoryClipboard{}
	}
	if sink == nil {
		sink = host.NewLogSink(io.Discard)
	}
	return &Registry{
		Markups:   markup.NewRegistry(),
		Clipboard: clip,
		Sink:      sink,
		sessions:  make(map[string]*Session),
	}
}

// Open indexes doc and draws its tree. typ forces a markup type; when empty
// the id's extension decides. Opening an id twice returns the first session.
func (r *Registry) Open(id string, doc buffer.DocumentStore, typ string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}

	var a markup.Adapter
	if typ == "" {
		a = r.Markups.ForFile(id, r.Options)
	} else {
		var err error
		if a, err = r.Markups.New(typ, r.Options); err != nil {
			return nil, fmt.Errorf("app: open %s: %w", id, err)
		}
	}
	if strip, ok := r.RStrip[a.Name()]; ok {
		opts := r.Options
		opts.RStrip = strip
		var err error
		if a, err = r.Markups.New(a.Name(), opts); err != nil {
			return nil, fmt.Errorf("app: open %s: %w", id, err)
		}
	}

	s := newSession(id, doc, a, r.Clipboard, r.Sink)
	s.SetVerify(r.Verify)
	s.TreeCreate()
	r.sessions[id] = s
	return s, nil
}

// Get returns the session for id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, id)
	}
	return s, nil
}

// Close forgets the session for id.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotOpen, id)
	}
	delete(r.sessions, id)
	return nil
}

// IDs lists the open documents.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
