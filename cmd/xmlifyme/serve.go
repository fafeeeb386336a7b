package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	xmlifymemcp "github.com/gorewood/xmlifyme/internal/mcp"
	"github.com/gorewood/xmlifyme/internal/output"
)

// newServeCmd creates the serve command that runs an MCP server over stdio.
func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout.

The server exposes two tools:
  inspect_records   List records and their planned files (read-only)
  export_records    Export records as xml or plain

Paths and options left empty in a tool call fall back to the resolved
configuration, so the same config file, .env and flags apply.

Example MCP client configuration:
  {"command": "xmlifyme", "args": ["serve", "--dir", "/path/to/job"]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

// runServe resolves configuration and blocks serving MCP on stdio.
func runServe(cmd *cobra.Command, opts *rootOptions) error {
	// stdout belongs to the protocol; errors go to stderr only.
	printer := output.NewPrinter(cmd.ErrOrStderr(), false, false)

	cfg, err := resolveConfig(opts)
	if err != nil {
		return fail(printer, err)
	}

	server := xmlifymemcp.NewServer(buildVersion(), cfg)
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fail(printer, output.NewSystemError("mcp server: "+err.Error()))
	}
	return nil
}
