package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nifikit/nifigen/internal/fileutil"
	"github.com/nifikit/nifigen/parser"
	"github.com/nifikit/nifigen/patcher"
)

type patchInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OpenAPI document to patch"`
	IncludeDocument bool      `json:"include_document,omitempty" jsonschema:"Include the full corrected document in output"`
	Output          string    `json:"output,omitempty"           jsonschema:"File path to write the corrected document. If omitted the document is returned inline when include_document is true."`
}

type patchApplied struct {
	Patch       string `json:"patch"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type patchOutput struct {
	PatchCount int            `json:"patch_count"`
	Patches    []patchApplied `json:"patches,omitempty"`
	WrittenTo  string         `json:"written_to,omitempty"`
	Document   string         `json:"document,omitempty"`
}

func handlePatch(_ context.Context, _ *mcp.CallToolRequest, input patchInput) (*mcp.CallToolResult, patchOutput, error) {
	parsed, err := parseSpecInput(input.Spec)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	result, err := patcher.PatchWithOptions(patcher.WithParsed(parsed))
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	output := patchOutput{PatchCount: result.PatchCount}
	output.Patches = makeSlice[patchApplied](len(result.Applied))
	for _, a := range result.Applied {
		output.Patches = append(output.Patches, patchApplied{
			Patch:       a.Patch,
			Path:        a.Path,
			Description: a.Description,
		})
	}

	if input.Output != "" || input.IncludeDocument {
		var data []byte
		switch result.SourceFormat {
		case parser.SourceFormatYAML:
			data, err = parsed.MarshalOrderedYAML()
		default:
			data, err = parsed.MarshalOrderedJSONIndent("", "  ")
		}
		if err != nil {
			return errResult(err), patchOutput{}, nil
		}

		if input.Output != "" {
			if err := os.WriteFile(input.Output, data, fileutil.ReadableByAll); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), patchOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}
