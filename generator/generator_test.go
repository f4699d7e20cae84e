package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/parser"
)

const sampleSpec = `{
  "components": {
    "schemas": {
      "RevisionDTO": {
        "type": "object",
        "description": "A revision handle.",
        "required": ["version"],
        "properties": {
          "clientId": {"type": "string"},
          "version": {"type": "integer", "format": "int64"},
          "lastModified": {"type": "string", "format": "date-time"}
        }
      },
      "ProcessGroupDTO": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "parent": {"$ref": "#/components/schemas/ProcessGroupDTO"},
          "revision": {"$ref": "#/components/schemas/RevisionDTO"},
          "variables": {
            "type": "object",
            "additionalProperties": {"type": ["string", "null"]},
            "nullable": true
          },
          "tags": {"type": "array", "items": {"type": "string"}}
        }
      },
      "ExecutionNode": {
        "type": "string",
        "enum": ["ALL", "PRIMARY_NODE"]
      },
      "VariableRegistry": {
        "type": "object",
        "additionalProperties": {"type": ["string", "null"]}
      },
      "RevisionList": {
        "type": "array",
        "items": {"$ref": "#/components/schemas/RevisionDTO"}
      },
      "CurrentRevision": {"$ref": "#/components/schemas/RevisionDTO"}
    }
  }
}`

func extract(t *testing.T, src string) *extractor.Extraction {
	t.Helper()
	parsed, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)
	ext, err := extractor.New().ExtractParsed(parsed)
	require.NoError(t, err)
	return ext
}

func generate(t *testing.T, src string) *GenerateResult {
	t.Helper()
	result, err := New().Generate(extract(t, src))
	require.NoError(t, err)
	require.True(t, result.Success)
	return result
}

func TestGenerateTypes(t *testing.T) {
	result := generate(t, sampleSpec)

	assert.Equal(t, "nifi", result.PackageName)
	assert.Equal(t, 6, result.GeneratedTypes)
	assert.Empty(t, result.Issues)

	file := result.GetFile("types.go")
	require.NotNil(t, file)
	code := string(file.Content)

	assert.Contains(t, code, "package nifi")
	assert.Contains(t, code, `"time"`)

	// Struct with required, optional and date-time fields
	assert.Contains(t, code, "// RevisionDTO A revision handle.")
	assert.Contains(t, code, "type RevisionDTO struct {")
	assert.Regexp(t, "ClientId\\s+\\*string\\s+`json:\"clientId,omitempty\"`", code)
	assert.Regexp(t, "Version\\s+int64\\s+`json:\"version\"`", code)
	assert.Regexp(t, "LastModified\\s+\\*time\\.Time\\s+`json:\"lastModified,omitempty\"`", code)

	// Self reference and cross reference
	assert.Regexp(t, "Parent\\s+\\*ProcessGroupDTO", code)
	assert.Regexp(t, "Revision\\s+\\*RevisionDTO", code)
	assert.Regexp(t, "ID\\s+\\*string", code)
	assert.Regexp(t, "Variables\\s+map\\[string\\]\\*string", code)
	assert.Regexp(t, "Tags\\s+\\[\\]string", code)

	// Enum type and constants
	assert.Contains(t, code, "type ExecutionNode string")
	assert.Regexp(t, "ExecutionNodeAll\\s+ExecutionNode = \"ALL\"", code)
	assert.Regexp(t, "ExecutionNodePrimaryNode\\s+ExecutionNode = \"PRIMARY_NODE\"", code)

	// Map, slice and alias declarations
	assert.Contains(t, code, "type VariableRegistry map[string]*string")
	assert.Contains(t, code, "type RevisionList []RevisionDTO")
	assert.Contains(t, code, "type CurrentRevision = RevisionDTO")
}

func TestGenerateOrderFollowsExtraction(t *testing.T) {
	result := generate(t, sampleSpec)
	code := string(result.GetFile("types.go").Content)

	first := strings.Index(code, "type RevisionDTO struct")
	last := strings.Index(code, "type CurrentRevision")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, last, 0)
	assert.Less(t, first, last)
}

func TestGenerateDeterministic(t *testing.T) {
	ext := extract(t, sampleSpec)

	first, err := New().Generate(ext)
	require.NoError(t, err)
	second, err := New().Generate(ext)
	require.NoError(t, err)

	assert.Equal(t, first.GetFile("types.go").Content, second.GetFile("types.go").Content)
}

func TestGenerateInlineObjectIssue(t *testing.T) {
	spec := `{
	  "components": {
	    "schemas": {
	      "OuterDTO": {
	        "type": "object",
	        "properties": {
	          "inner": {
	            "type": "object",
	            "properties": {"x": {"type": "string"}}
	          }
	        }
	      }
	    }
	  }
	}`
	result := generate(t, spec)

	require.True(t, result.HasIssues())
	assert.Equal(t, "OuterDTO.inner", result.Issues[0].Context)
	assert.Regexp(t, "Inner\\s+map\\[string\\]any", string(result.GetFile("types.go").Content))
}

func TestGenerateNilExtraction(t *testing.T) {
	_, err := New().Generate(nil)
	assert.Error(t, err)
}

func TestGenerateWithOptions(t *testing.T) {
	t.Run("custom package name", func(t *testing.T) {
		result, err := GenerateWithOptions(
			WithExtraction(extract(t, sampleSpec)),
			WithPackageName("nifiapi"),
		)
		require.NoError(t, err)
		assert.Equal(t, "nifiapi", result.PackageName)
		assert.Contains(t, string(result.GetFile("types.go").Content), "package nifiapi")
	})

	t.Run("missing extraction", func(t *testing.T) {
		_, err := GenerateWithOptions(WithPackageName("nifi"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no extraction")
	})
}

func TestWriteFiles(t *testing.T) {
	result := generate(t, sampleSpec)

	dir := t.TempDir()
	require.NoError(t, result.WriteFiles(filepath.Join(dir, "gen")))

	written, err := os.ReadFile(filepath.Join(dir, "gen", "types.go"))
	require.NoError(t, err)
	assert.Equal(t, result.GetFile("types.go").Content, written)
}
