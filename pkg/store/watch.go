package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a document change notification.
type EventType int

const (
	// EventDocumentChanged indicates the document was written or replaced.
	EventDocumentChanged EventType = iota

	// EventDocumentRemoved signals the document went away. Editors that save
	// by renaming usually follow it with a change event.
	EventDocumentRemoved
)

func (t EventType) String() string {
	switch t {
	case EventDocumentChanged:
		return "changed"
	case EventDocumentRemoved:
		return "removed"
	}
	return "unknown"
}

// Event is emitted by WatchDocument when the document on disk changes.
type Event struct {
	Type EventType
	Path string
}

// watchDelay is how long a burst of writes is collected before one event
// per kind is sent.
const watchDelay = 100 * time.Millisecond

// WatchDocument streams change events for path until ctx is cancelled. The
// directory is watched rather than the file so saves that replace the file
// are seen. The channel is closed once ctx is done or the watcher fails.
func WatchDocument(ctx context.Context, path string) (<-chan Event, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 4)
	go func() {
		defer close(events)
		defer watcher.Close()

		var (
			burst pending
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		queue := func(t EventType) {
			burst.add(t)
			if fire == nil {
				timer = time.NewTimer(watchDelay)
				fire = timer.C
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-fire:
				fire = nil
				for _, t := range burst.drain() {
					select {
					case events <- Event{Type: t, Path: abs}:
					case <-ctx.Done():
						return
					}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// The watcher lost track; have the consumer reload.
				queue(EventDocumentChanged)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				switch {
				case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					queue(EventDocumentRemoved)
				case evt.Op&(fsnotify.Create|fsnotify.Write) != 0:
					queue(EventDocumentChanged)
				}
			}
		}
	}()

	return events, nil
}

// pending records which kinds of event arrived during a burst.
type pending struct {
	removed, changed bool
}

func (p *pending) add(t EventType) {
	switch t {
	case EventDocumentRemoved:
		p.removed = true
	case EventDocumentChanged:
		p.changed = true
	}
}

// drain returns the collected kinds, removals first, and resets p.
func (p *pending) drain() []EventType {
	var out []EventType
	if p.removed {
		out = append(out, EventDocumentRemoved)
	}
	if p.changed {
		out = append(out, EventDocumentChanged)
	}
	*p = pending{}
	return out
}
