package mcp

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"
)

func TestResourceTemplates(t *testing.T) {
	svc, _ := newTestService(t, "A {{{1\nbody\nB {{{2x\n")
	ctx := context.Background()

	byName := map[string]templateReader{}
	for _, rt := range resourceTemplates {
		byName[rt.name] = rt.read
	}

	got, err := byName["Outline Node"](ctx, svc, map[string]any{"name": []string{"plan.txt"}, "pos": "3"})
	if err != nil {
		t.Fatalf("node: %v", err)
	}
	if n := got.(*NodeDTO); n.Heading != "B" || !n.Marked {
		t.Fatalf("unexpected node %+v", n)
	}

	if _, err := byName["Outline Node"](ctx, svc, map[string]any{"name": "plan.txt", "pos": "two"}); err == nil {
		t.Fatal("expected an error for a non-numeric position")
	}
	if _, err := byName["Document Outline"](ctx, svc, map[string]any{}); err == nil {
		t.Fatal("expected an error without a document name")
	}

	report, err := byName["Marked Nodes"](ctx, svc, map[string]any{"name": "plan.txt"})
	if err != nil {
		t.Fatalf("marked: %v", err)
	}
	contents, err := encodeResourceJSON("outline://documents/plan.txt/marked", report)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected one content, got %d", len(contents))
	}
	b, _ := json.Marshal(report)
	if !strings.Contains(string(b), "B") {
		t.Fatalf("report misses the marked node: %s", b)
	}
}

func TestListenURL(t *testing.T) {
	addr := &net.TCPAddr{IP: net.IPv4zero, Port: 4242}
	if got := listenURL(addr, "0.0.0.0:0", "/mcp", false); got != "http://127.0.0.1:4242/mcp" {
		t.Fatalf("wildcard host: got %s", got)
	}
	addr = &net.TCPAddr{IP: net.IPv6loopback, Port: 80}
	if got := listenURL(addr, "[::1]:80", "/x", true); got != "https://[::1]:80/x" {
		t.Fatalf("ipv6 host: got %s", got)
	}
}
