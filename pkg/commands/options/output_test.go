package options

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandleError(t *testing.T) {
	boom := errors.New("boom")

	o := &OutputOptions{}
	if err := o.HandleError(boom); err != boom {
		t.Fatalf("text mode should pass the error through, got %v", err)
	}

	var out bytes.Buffer
	o = &OutputOptions{JSON: true, Out: &out}
	if err := o.HandleError(boom); err != nil {
		t.Fatalf("json mode should swallow the error, got %v", err)
	}
	if got, want := out.String(), "{\"error\":\"boom\"}\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	out.Reset()
	if err := o.HandleError(nil); err != nil || out.Len() != 0 {
		t.Fatalf("nil error should print nothing, got %q", out.String())
	}
}
