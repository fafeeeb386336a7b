// Package mcp provides a Model Context Protocol server for xmlifyme.
// It exposes record inspection and export as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/xmlifyme/internal/config"
)

// NewServer creates an MCP server with all xmlifyme tools registered.
// cfg supplies defaults for paths and options a tool call leaves empty.
func NewServer(version string, cfg config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    config.AppName,
		Version: version,
	}, nil)
	registerTools(server, cfg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// registerTools adds all xmlifyme tools to the server.
func registerTools(server *mcp.Server, cfg config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_records",
		Description: "Load the input JSON file and list its records with character and byte counts, without writing anything.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, handleInspect(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_records",
		Description: "Write every record of the input JSON file to its own file in the output directory, as xml or plain, and return size statistics.",
		Annotations: &mcp.ToolAnnotations{
			// Existing files with the same name are overwritten.
			DestructiveHint: boolPtr(true),
			IdempotentHint:  true,
			OpenWorldHint:   boolPtr(false),
		},
	}, handleExport(cfg))
}
