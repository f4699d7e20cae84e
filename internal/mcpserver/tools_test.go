package mcpserver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// specWithStringMap contains the targeted field plus a generic
// string-map defect.
const specWithStringMap = `{
  "openapi": "3.0.3",
  "components": {
    "schemas": {
      "ProcessorConfigDTO": {
        "type": "object",
        "properties": {
          "properties": {
            "type": "object",
            "additionalProperties": {"type": "string"}
          }
        }
      },
      "RevisionDTO": {
        "type": "object",
        "properties": {
          "version": {"type": "integer", "format": "int64"}
        }
      }
    }
  }
}`

func TestPatchTool(t *testing.T) {
	input := patchInput{
		Spec:            specInput{Content: specWithStringMap},
		IncludeDocument: true,
	}
	result, output, err := handlePatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 1, output.PatchCount)
	require.Len(t, output.Patches, 1)
	assert.Equal(t, "nullable-string-maps", output.Patches[0].Patch)
	assert.Equal(t, "ProcessorConfigDTO.properties.properties", output.Patches[0].Path)
	assert.Contains(t, output.Document, `"nullable": true`)
}

func TestPatchTool_WritesOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "patched.json")
	input := patchInput{
		Spec:   specInput{Content: specWithStringMap},
		Output: outPath,
	}
	result, output, err := handlePatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, outPath, output.WrittenTo)
	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"null"`)
}

func TestPatchTool_InvalidInput(t *testing.T) {
	result, _, err := handlePatch(context.Background(), &mcp.CallToolRequest{}, patchInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestExtractTool(t *testing.T) {
	input := extractInput{Spec: specInput{Content: specWithStringMap}}
	result, output, err := handleExtract(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 2, output.SchemaCount)
	assert.Equal(t, 1, output.PatchCount)
	assert.Equal(t, []string{"ProcessorConfigDTO", "RevisionDTO"}, output.Names)
}

func TestExtractTool_Raw(t *testing.T) {
	input := extractInput{Spec: specInput{Content: specWithStringMap}, Raw: true}
	result, output, err := handleExtract(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Zero(t, output.PatchCount)
	assert.Equal(t, 2, output.SchemaCount)
}

func TestGenerateTool(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "gen")
	input := generateInput{
		Spec:        specInput{Content: specWithStringMap},
		PackageName: "nifi",
		OutputDir:   outDir,
	}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 1, output.PatchCount)
	assert.Equal(t, 2, output.GeneratedTypes)
	require.Len(t, output.Files, 1)
	assert.Equal(t, "types.go", output.Files[0].Name)

	code, err := os.ReadFile(filepath.Join(outDir, "types.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "package nifi")
}

func TestGenerateTool_RequiresOutputDir(t *testing.T) {
	input := generateInput{Spec: specInput{Content: specWithStringMap}}
	result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestParseSpecInputValidation(t *testing.T) {
	_, err := parseSpecInput(specInput{})
	assert.Error(t, err)

	_, err = parseSpecInput(specInput{File: "a.json", Content: "{}"})
	assert.Error(t, err)
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", sanitizeError(nil))

	err := errors.New("open /home/user/secrets/swagger.json: no such file")
	assert.Equal(t, "open <path>: no such file", sanitizeError(err))
}
