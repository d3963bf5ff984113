package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/outliner/pkg/app"
)

// Transport selects how the server is reached.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

const instructions = `Read, search and restructure the outlines of documents in the served directory.
Nodes are addressed by tree position: position 1 is the document itself and 2 its first headline.
Every edit is saved to disk before the tool returns.`

// Runner serves the documents under Root over MCP until ctx is done.
type Runner struct {
	Service *app.Service
	Root    string
	Version string

	Transport Transport
	// Listen is the host:port of the HTTP transport; Endpoint its path.
	Listen   string
	Endpoint string
	TLSCert  string
	TLSKey   string
	// Out receives the listening URL, when set.
	Out io.Writer
}

func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not serve mcp, no service")
	}
	if r.Root == "" {
		r.Root = "."
	}
	if r.Version == "" {
		r.Version = "dev"
	}

	srv := server.NewMCPServer(
		"outliner",
		r.Version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(r.Service, r.Root)
	registerResources(srv, svc)
	registerTools(srv, svc)

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	}
	return fmt.Errorf("unsupported transport %q (expected http or stdio)", r.Transport)
}

func (r Runner) tls() (bool, error) {
	switch {
	case r.TLSCert == "" && r.TLSKey == "":
		return false, nil
	case r.TLSCert == "" || r.TLSKey == "":
		return false, errors.New("both http tls cert and key must be provided")
	}
	return true, nil
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	secure, err := r.tls()
	if err != nil {
		return err
	}
	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = "/mcp"
	}
	listen := r.Listen
	if listen == "" {
		listen = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(endpoint, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return err
	}
	if r.Out != nil {
		_, _ = fmt.Fprintf(r.Out, "MCP server listening on %s\n", listenURL(ln.Addr(), listen, endpoint, secure))
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdown)
	}()

	if secure {
		err = httpSrv.ServeTLS(ln, r.TLSCert, r.TLSKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// listenURL names the bound address, swapping wildcard hosts for one a client
// can dial.
func listenURL(addr net.Addr, listen, endpoint string, secure bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + listen + endpoint
	}
	host, _, _ := net.SplitHostPort(listen)
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, host, tcp.Port, endpoint)
}
