package info

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/outliner/pkg/printers"
	"tableflip.dev/outliner/pkg/store"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	n := Info{Config: store.MemoryConfig(), Printer: printers.PrettyPrint{Out: &out}}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"clipboard", "memory", "{{{", "markdown", " none"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	var out bytes.Buffer
	n := Info{Config: store.MemoryConfig(), JSON: true, Printer: printers.PrettyPrint{Out: &out}}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	var d Details
	if err := json.Unmarshal(out.Bytes(), &d); err != nil {
		t.Fatalf("bad json %q: %v", out.String(), err)
	}
	if d.Clipboard != "memory" || d.Marker != "{{{" || len(d.Markups) == 0 {
		t.Fatalf("unexpected details %+v", d)
	}
}
