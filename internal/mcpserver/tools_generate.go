package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/generator"
	"github.com/nifikit/nifigen/patcher"
)

type generateInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OpenAPI document to generate types from"`
	PackageName string    `json:"package_name,omitempty" jsonschema:"Go package name for generated code (default: nifi)"`
	OutputDir   string    `json:"output_dir"             jsonschema:"Directory to write generated files to"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	PatchCount     int                 `json:"patch_count"`
	GeneratedTypes int                 `json:"generated_types"`
	Files          []generatedFileInfo `json:"files,omitempty"`
	Issues         []string            `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	parsed, err := parseSpecInput(input.Spec)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	patched, err := patcher.PatchWithOptions(patcher.WithParsed(parsed))
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	ext, err := extractor.ExtractWithOptions(extractor.WithParsed(parsed))
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	result, err := generator.GenerateWithOptions(
		generator.WithExtraction(ext),
		generator.WithPackageName(input.PackageName),
	)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		PatchCount:     patched.PatchCount,
		GeneratedTypes: result.GeneratedTypes,
	}
	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{Name: f.Name, Size: len(f.Content)})
	}
	output.Issues = makeSlice[string](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	return nil, output, nil
}
