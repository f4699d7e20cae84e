// This file implements schema type/format to Go type mapping for code
// generation.

package generator

import (
	"strings"

	"github.com/nifikit/nifigen/internal/schemautil"
	"github.com/nifikit/nifigen/parser"
)

// getSchemaType extracts the type from a schema, handling both plain
// string types and ["T","null"] type sets.
func getSchemaType(schema *parser.Schema) string {
	if schema == nil {
		return ""
	}

	if primaryType := schemautil.GetPrimaryType(schema); primaryType != "" {
		return primaryType
	}

	// Infer type from other fields when no explicit type is set
	if schema.Properties != nil {
		return "object"
	}
	if schema.Items != nil {
		return "array"
	}
	if len(schema.Enum) > 0 {
		return "string"
	}

	return ""
}

// stringFormatToGoType maps string formats to Go types.
func stringFormatToGoType(format string) string {
	switch format {
	case "date-time":
		return "time.Time"
	case "byte", "binary":
		return "[]byte"
	default:
		return "string"
	}
}

// integerFormatToGoType maps integer formats to Go types.
func integerFormatToGoType(format string) string {
	switch format {
	case "int32":
		return "int32"
	default:
		return "int64"
	}
}

// numberFormatToGoType maps number formats to Go types.
func numberFormatToGoType(format string) string {
	switch format {
	case "float":
		return "float32"
	default:
		return "float64"
	}
}

// needsTimeImport recursively checks if a schema requires the "time"
// package.
func needsTimeImport(schema *parser.Schema) bool {
	if schema == nil {
		return false
	}

	if getSchemaType(schema) == "string" && schema.Format == "date-time" {
		return true
	}

	for _, prop := range schema.Properties {
		if needsTimeImport(prop) {
			return true
		}
	}
	if needsTimeImport(schema.Items) {
		return true
	}
	if schema.AdditionalProperties.HasSchema() {
		if needsTimeImport(schema.AdditionalProperties.Schema) {
			return true
		}
	}

	return false
}

// isIndirect reports whether the Go type already carries reference
// semantics, so pointer wrapping would be redundant.
func isIndirect(goType string) bool {
	return strings.HasPrefix(goType, "*") ||
		strings.HasPrefix(goType, "[]") ||
		strings.HasPrefix(goType, "map[") ||
		goType == "any"
}
