package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve outlines over the Model Context Protocol.",
		Long: options.Wrap80(`Start an MCP server exposing the outlines of the documents
under --root. Clients can read trees, search headlines and make structural edits, which are
saved as they happen.`),
		Example: `
outliner mcp --root ~/notes
outliner mcp --transport stdio
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := service(nil)
			if err != nil {
				return err
			}
			r := mcp.Runner{
				Service:  svc,
				Root:     mo.Root,
				Version:  version,
				Endpoint: mo.Endpoint(),
				TLSCert:  strings.TrimSpace(mo.TLSCert),
				TLSKey:   strings.TrimSpace(mo.TLSKey),
				Out:      cmd.OutOrStdout(),
			}
			switch t := mcp.Transport(strings.ToLower(strings.TrimSpace(mo.Transport))); t {
			case "", mcp.TransportHTTP:
				r.Transport = mcp.TransportHTTP
				if r.Listen, err = mo.Listen(); err != nil {
					return err
				}
			case mcp.TransportStdio:
				r.Transport = t
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", mo.Transport)
			}
			ctx, stop := signal.NotifyContext(ctxOrBackground(cmd), os.Interrupt)
			defer stop()
			return r.Do(ctx)
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
