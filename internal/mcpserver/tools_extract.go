package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/patcher"
)

type extractInput struct {
	Spec specInput `json:"spec"            jsonschema:"The OpenAPI document to extract schemas from"`
	Raw  bool      `json:"raw,omitempty"   jsonschema:"Skip the correction registry and extract the document as-is"`
}

type extractOutput struct {
	SchemaCount int      `json:"schema_count"`
	PatchCount  int      `json:"patch_count"`
	Names       []string `json:"names,omitempty"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	parsed, err := parseSpecInput(input.Spec)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	output := extractOutput{}
	if !input.Raw {
		patched, err := patcher.PatchWithOptions(patcher.WithParsed(parsed))
		if err != nil {
			return errResult(err), extractOutput{}, nil
		}
		output.PatchCount = patched.PatchCount
	}

	ext, err := extractor.ExtractWithOptions(extractor.WithParsed(parsed))
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	output.SchemaCount = ext.Len()
	output.Names = ext.Names
	return nil, output, nil
}
