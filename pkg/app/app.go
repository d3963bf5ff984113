package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/outliner/pkg/host"
	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/render"
	"tableflip.dev/outliner/pkg/store"
)

// Service opens outline files on disk. It wires configuration, clipboard
// registers and file persistence into a Registry so CLIs and watchers
// share one way of doing things.
type Service struct {
	Config store.Config
	Sink   host.MessageSink
	// Register names the disk register used as clipboard,
	// store.DefaultRegister when empty.
	Register string

	mu       sync.Mutex
	registry *Registry
}

var (
	ErrNoConfig         = errors.New("app: no config")
	ErrUnknownClipboard = errors.New("app: unknown clipboard")
)

// Clipboard returns the clipboard store picked by configuration.
func (s *Service) Clipboard() (host.ClipboardStore, error) {
	if s.Config == nil {
		return nil, ErrNoConfig
	}
	switch kind := s.Config.Clipboard(); kind {
	case "", "disk":
		name := s.Register
		if name == "" {
			name = store.DefaultRegister
		}
		return store.OpenRegisters(s.Config.RegistersPath()).Clipboard(name), nil
	case "system":
		if !host.SystemClipboardAvailable() {
			return nil, fmt.Errorf("%w: no system clipboard utility found", ErrUnknownClipboard)
		}
		return host.SystemClipboard{}, nil
	case "memory":
		return &host.MemoryClipboard{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClipboard, kind)
	}
}

// Registry returns the registry behind the service, creating it on first
// use.
func (s *Service) Registry() (*Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registry != nil {
		return s.registry, nil
	}
	clip, err := s.Clipboard()
	if err != nil {
		return nil, err
	}
	r := NewRegistry(clip, s.Sink)
	r.Options = markup.Options{Marker: s.Config.Marker()}
	r.RStrip = make(map[string]string)
	for _, name := range r.Markups.Names() {
		if strip := s.Config.RStrip(name); strip != "" {
			r.RStrip[name] = strip
		}
	}
	r.Verify = s.Config.Verify()
	s.registry = r
	return r, nil
}

// Open loads path and indexes it. typ forces a markup type; when empty the
// configured type, then the file extension, decide.
func (s *Service) Open(_ context.Context, path, typ string) (*Session, error) {
	r, err := s.Registry()
	if err != nil {
		return nil, err
	}
	if sess, err := r.Get(path); err == nil {
		return sess, nil
	}
	doc, err := store.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	if typ == "" {
		typ = s.Config.Markup()
	}
	return r.Open(path, doc, typ)
}

// Save writes the document of sess back to its file.
func (s *Service) Save(_ context.Context, sess *Session) error {
	if sess == nil {
		return errors.New("app: no session to save")
	}
	return store.SaveDocument(sess.ID, sess.Doc.Lines())
}

// Reload reads the file of sess again, re-indexes it and returns the patch
// that brings the drawn tree up to date.
func (s *Service) Reload(_ context.Context, sess *Session) (render.Patch, error) {
	doc, err := store.LoadDocument(sess.ID)
	if err != nil {
		return render.Patch{}, err
	}
	sess.Doc.SetLines(doc.Lines())
	return sess.Update(), nil
}

// Watch subscribes to changes of the file behind sess.
func (s *Service) Watch(ctx context.Context, sess *Session) (<-chan store.Event, error) {
	return store.WatchDocument(ctx, sess.ID)
}

// Close forgets the session for path.
func (s *Service) Close(path string) error {
	r, err := s.Registry()
	if err != nil {
		return err
	}
	return r.Close(path)
}
