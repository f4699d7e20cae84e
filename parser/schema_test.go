package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func decodeSchema(t *testing.T, src string) *Schema {
	t.Helper()
	var s Schema
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	return &s
}

func TestSchemaDecodeObject(t *testing.T) {
	s := decodeSchema(t, `{
		"type": "object",
		"description": "A processor configuration.",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"},
			"count": {"type": "integer", "format": "int32"},
			"tags": {"type": "array", "items": {"type": "string"}}
		}
	}`)

	assert.Equal(t, "object", s.Type)
	require.Len(t, s.Properties, 3)
	assert.Equal(t, "string", s.Properties["name"].Type)
	assert.Equal(t, "int32", s.Properties["count"].Format)
	require.NotNil(t, s.Properties["tags"].Items)
	assert.Equal(t, "string", s.Properties["tags"].Items.Type)

	assert.True(t, s.IsRequired("name"))
	assert.False(t, s.IsRequired("count"))
}

func TestSchemaDecodeTypeArray(t *testing.T) {
	s := decodeSchema(t, `{"type": ["string", "null"]}`)

	types, ok := s.Type.([]any)
	require.True(t, ok, "type array should decode as []any")
	assert.Equal(t, []any{"string", "null"}, types)
}

func TestSchemaDecodeAdditionalPropertiesSchema(t *testing.T) {
	s := decodeSchema(t, `{
		"type": "object",
		"additionalProperties": {"type": "string"}
	}`)

	require.True(t, s.AdditionalProperties.HasSchema())
	assert.False(t, s.AdditionalProperties.IsBool())
	assert.Equal(t, "string", s.AdditionalProperties.Schema.Type)
}

func TestSchemaDecodeAdditionalPropertiesBool(t *testing.T) {
	for _, val := range []string{"true", "false"} {
		s := decodeSchema(t, `{"type": "object", "additionalProperties": `+val+`}`)

		require.True(t, s.AdditionalProperties.IsBool(), "additionalProperties: %s", val)
		assert.False(t, s.AdditionalProperties.HasSchema())
		assert.Equal(t, val == "true", *s.AdditionalProperties.Allowed)
	}
}

func TestSchemaDecodeRef(t *testing.T) {
	s := decodeSchema(t, `{"$ref": "#/components/schemas/RevisionDTO"}`)
	assert.Equal(t, "#/components/schemas/RevisionDTO", s.Ref)
}

func TestSchemaDecodeNullable(t *testing.T) {
	s := decodeSchema(t, `{"type": "object", "nullable": true}`)
	assert.True(t, s.Nullable)
}

func TestSchemaExtraCapturesExtensions(t *testing.T) {
	s := decodeSchema(t, `{"type": "string", "x-nifi-internal": true}`)
	require.Contains(t, s.Extra, "x-nifi-internal")
	assert.Equal(t, true, s.Extra["x-nifi-internal"])
}

func TestIsStringEnum(t *testing.T) {
	assert.True(t, decodeSchema(t, `{"type": "string", "enum": ["RUNNING", "STOPPED"]}`).IsStringEnum())
	assert.False(t, decodeSchema(t, `{"type": "string"}`).IsStringEnum())
	assert.False(t, decodeSchema(t, `{"enum": [1, 2]}`).IsStringEnum())

	var nilSchema *Schema
	assert.False(t, nilSchema.IsStringEnum())
}
