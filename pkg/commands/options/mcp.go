package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions configure the MCP server.
type MCPOptions struct {
	Root      string
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Root, "root", ".",
		"Directory whose documents are served.")
	cmd.Flags().StringVar(&o.Transport, "transport", "http",
		"Transport to use: http or stdio.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1",
		"Interface the HTTP transport listens on.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080,
		"Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp",
		"HTTP endpoint path.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "",
		"TLS certificate file; serves HTTPS together with --http-tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "",
		"TLS private key file.")
}

// Listen returns the host:port the HTTP transport binds.
func (o *MCPOptions) Listen() (string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", fmt.Errorf("invalid http-port %d", o.Port)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port)), nil
}

// Endpoint returns the HTTP path with a leading slash.
func (o *MCPOptions) Endpoint() string {
	p := strings.TrimSpace(o.Path)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
