package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupGenerateFlags(t *testing.T) {
	fs, flags := SetupGenerateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "", flags.OutputDir)
		assert.Equal(t, "", flags.PackageName)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "gen", "--package", "apitypes", "swagger.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "gen", flags.OutputDir)
		assert.Equal(t, "apitypes", flags.PackageName)
		assert.Equal(t, "swagger.json", fs.Arg(0))
	})
}

func TestHandleGenerate_NoArgs(t *testing.T) {
	err := HandleGenerate([]string{})
	assert.Error(t, err)
}

func TestHandleGenerate_Help(t *testing.T) {
	err := HandleGenerate([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleGenerate_RequiresOutputDir(t *testing.T) {
	err := HandleGenerate([]string{writeSampleSpec(t)})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "output directory")
}

func TestHandleGenerate_WritesTypes(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "gen")
	err := HandleGenerate([]string{"-o", outDir, "--package", "apitypes", writeSampleSpec(t)})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "types.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package apitypes")
	assert.Contains(t, string(data), "type ProcessorConfigDTO struct {")
}
