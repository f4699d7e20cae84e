package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSpec = `{
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
      }
    }
  }
}`

func writeSampleSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSpec), 0o600))
	return path
}

func TestSetupPatchFlags(t *testing.T) {
	fs, flags := SetupPatchFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "", flags.Output)
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.False(t, flags.Verbose, "expected Verbose to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "corrected.json", "-q", "swagger.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "corrected.json", flags.Output)
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "swagger.json", fs.Arg(0))
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupPatchFlags()
		args := []string{"--output", "out.json", "--quiet", "in.json"}
		require.NoError(t, fs2.Parse(args))

		assert.Equal(t, "out.json", flags2.Output)
		assert.True(t, flags2.Quiet, "expected Quiet to be true")
	})
}

func TestHandlePatch_NoArgs(t *testing.T) {
	err := HandlePatch([]string{})
	assert.Error(t, err)
}

func TestHandlePatch_Help(t *testing.T) {
	err := HandlePatch([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandlePatch_WritesCorrectedDocument(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "corrected.json")
	err := HandlePatch([]string{"-q", "-o", outPath, writeSampleSpec(t)})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nullable": true`)
	assert.Contains(t, string(data), `"null"`)
}

func TestHandlePatch_MissingFile(t *testing.T) {
	err := HandlePatch([]string{"-q", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}
