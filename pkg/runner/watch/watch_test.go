package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/printers"
	"tableflip.dev/outliner/pkg/render"
	"tableflip.dev/outliner/pkg/store"
)

func TestWatchRedrawsOnSave(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "plan.txt")
	if err := os.WriteFile(path, []byte("A {{{1\n"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	patches := make(chan render.Patch, 1)
	var out bytes.Buffer
	w := Watch{
		Service: &app.Service{Config: store.MemoryConfig()},
		Path:    path,
		Printer: printers.PrettyPrint{Out: &out},
		Notify: func(ev store.Event, p render.Patch) {
			if ev.Type != store.EventDocumentChanged || p.Kind == render.None {
				return
			}
			select {
			case patches <- p:
			default:
			}
		},
	}

	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	// The watcher may not be up for the first write, so keep saving.
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	deadline := time.After(5 * time.Second)

	var got render.Patch
wait:
	for {
		select {
		case got = <-patches:
			break wait
		case <-tick.C:
			if err := os.WriteFile(path, []byte("A {{{1\nB {{{1\n"), 0o644); err != nil {
				t.Fatalf("write document: %v", err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for a redraw")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Do failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	if got.Kind != render.Full {
		t.Fatalf("expected a full redraw, got %s", got.Kind)
	}
	if len(got.Lines) != 3 || !strings.HasSuffix(got.Lines[2], "|B") {
		t.Fatalf("unexpected patch lines %q", got.Lines)
	}
	if !strings.Contains(out.String(), "changed: full redraw from line 1") {
		t.Fatalf("missing redraw note in %q", out.String())
	}
}
