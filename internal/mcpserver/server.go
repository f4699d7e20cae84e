// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes nifigen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nifikit/nifigen"
)

const serverInstructions = `nifigen MCP server: corrects the NiFi REST API OpenAPI document and generates Go types from it.

Tools:
- patch: apply the correction registry and report every rewrite with its schema path
- extract: list the corrected schemas in source document order
- generate: write Go type declarations for the corrected schemas to a directory

Each tool accepts the document as a file path or inline content. The patch registry is fixed and idempotent; running patch twice reports zero rewrites the second time.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "nifigen", Version: nifigen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "patch",
		Description: "Apply the schema correction registry to a NiFi OpenAPI document. Reports every rewrite with its patch name and schema path. Use output to write the corrected document to a file, or include_document to return it inline.",
	}, handlePatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract the corrected schema collection from a NiFi OpenAPI document. Returns the schema names in source document order, so the result is stable across runs for an unchanged document.",
	}, handleExtract)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Go type declarations from a NiFi OpenAPI document. The document is corrected and extracted first. Requires output_dir. Returns a manifest of generated files and any generation issues.",
	}, handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
