// This file implements the type declaration emitter.

package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/internal/schemautil"
	"github.com/nifikit/nifigen/parser"
)

// typeGenerator emits one Go source file covering every definition in a
// root schema container.
type typeGenerator struct {
	root   *extractor.RootSchema
	result *GenerateResult
	// typeFor maps schema names to their collision-free Go type names
	typeFor map[string]string
}

func (tg *typeGenerator) addIssue(context, message string) {
	tg.result.Issues = append(tg.result.Issues, GenerateIssue{Context: context, Message: message})
}

func (tg *typeGenerator) generateTypesFile(fileName string) error {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by nifigen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", tg.result.PackageName)

	for _, name := range tg.root.Order {
		if needsTimeImport(tg.root.Definitions[name]) {
			buf.WriteString("import \"time\"\n\n")
			break
		}
	}

	for _, name := range tg.root.Order {
		tg.writeTypeDecl(&buf, name, tg.root.Definitions[name])
		tg.result.GeneratedTypes++
	}

	// Format the code, then fix imports so the output compiles without a
	// goimports pass. Unformattable output is kept raw with an issue
	// rather than dropped.
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		tg.addIssue(fileName, fmt.Sprintf("failed to format generated code: %v", err))
		formatted = buf.Bytes()
	} else if fixed, err := imports.Process(fileName, formatted, nil); err != nil {
		tg.addIssue(fileName, fmt.Sprintf("failed to fix imports: %v", err))
	} else {
		formatted = fixed
	}

	tg.result.Files = append(tg.result.Files, GeneratedFile{
		Name:    fileName,
		Content: formatted,
	})
	return nil
}

// writeTypeDecl emits the declaration for a single named schema.
func (tg *typeGenerator) writeTypeDecl(buf *bytes.Buffer, name string, schema *parser.Schema) {
	typeName := tg.typeFor[name]

	if desc := cleanDescription(schema.Description); desc != "" {
		fmt.Fprintf(buf, "// %s %s\n", typeName, desc)
	}

	switch {
	case schema.Ref != "":
		fmt.Fprintf(buf, "type %s = %s\n\n", typeName, tg.resolveRef(schema.Ref))

	case schema.IsStringEnum():
		tg.writeEnumDecl(buf, typeName, schema)

	case getSchemaType(schema) == "array":
		fmt.Fprintf(buf, "type %s []%s\n\n", typeName, tg.itemType(name, schema))

	case schema.Properties != nil:
		tg.writeStructDecl(buf, name, typeName, schema)

	case getSchemaType(schema) == "object":
		fmt.Fprintf(buf, "type %s map[string]%s\n\n", typeName, tg.additionalPropertiesType(name, schema))

	default:
		goType := tg.schemaToGoType(name, schema)
		if goType == "any" {
			tg.addIssue(name, "schema has no representable type, generated as any")
			fmt.Fprintf(buf, "type %s = any\n\n", typeName)
			return
		}
		fmt.Fprintf(buf, "type %s %s\n\n", typeName, goType)
	}
}

// writeEnumDecl emits a named string type with one constant per enum
// value.
func (tg *typeGenerator) writeEnumDecl(buf *bytes.Buffer, typeName string, schema *parser.Schema) {
	fmt.Fprintf(buf, "type %s string\n\n", typeName)
	buf.WriteString("const (\n")
	for _, value := range schema.Enum {
		s, ok := value.(string)
		if !ok {
			continue
		}
		fmt.Fprintf(buf, "\t%s%s %s = %q\n", typeName, toTypeName(s), typeName, s)
	}
	buf.WriteString(")\n\n")
}

// writeStructDecl emits a struct with one field per property, in sorted
// property order. Optional and nullable fields use pointer types so an
// absent or null value is distinguishable from the zero value.
func (tg *typeGenerator) writeStructDecl(buf *bytes.Buffer, name, typeName string, schema *parser.Schema) {
	propNames := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	fmt.Fprintf(buf, "type %s struct {\n", typeName)
	for _, propName := range propNames {
		prop := schema.Properties[propName]
		required := schema.IsRequired(propName)

		fieldName := toFieldName(propName)
		goType := tg.schemaToGoType(name+"."+propName, prop)

		// Self-referential fields need pointer indirection regardless of
		// requiredness, or the struct would have infinite size.
		if goType == typeName {
			goType = "*" + goType
		} else if (!required || schemautil.IsNullable(prop)) && !isIndirect(goType) {
			goType = "*" + goType
		}

		tag := propName
		if !required {
			tag += ",omitempty"
		}

		if desc := cleanDescription(propDescription(prop)); desc != "" {
			fmt.Fprintf(buf, "\t// %s\n", desc)
		}
		fmt.Fprintf(buf, "\t%s %s `json:%q`\n", fieldName, goType, tag)
	}
	buf.WriteString("}\n\n")
}

func propDescription(s *parser.Schema) string {
	if s == nil {
		return ""
	}
	return s.Description
}

// schemaToGoType converts a schema to a Go type expression. The context
// string names the schema or field for issue reporting.
func (tg *typeGenerator) schemaToGoType(context string, schema *parser.Schema) string {
	if schema == nil {
		return "any"
	}

	if schema.Ref != "" {
		return tg.resolveRef(schema.Ref)
	}

	if t, ok := tg.compositionType(schema); ok {
		if t == "" {
			tg.addIssue(context, "schema composition is not representable, generated as any")
			return "any"
		}
		return t
	}

	switch getSchemaType(schema) {
	case "string":
		return stringFormatToGoType(schema.Format)
	case "integer":
		return integerFormatToGoType(schema.Format)
	case "number":
		return numberFormatToGoType(schema.Format)
	case "boolean":
		return "bool"
	case "array":
		return "[]" + tg.itemType(context, schema)
	case "object":
		if schema.Properties != nil {
			tg.addIssue(context, "inline object has properties, generated as map[string]any")
			return "map[string]any"
		}
		return "map[string]" + tg.additionalPropertiesType(context, schema)
	default:
		return "any"
	}
}

// compositionType resolves allOf/anyOf/oneOf. Only the single-branch
// reference form maps to a Go type; anything richer is reported by the
// caller.
func (tg *typeGenerator) compositionType(schema *parser.Schema) (string, bool) {
	branches := schema.AllOf
	if len(branches) == 0 {
		branches = schema.AnyOf
	}
	if len(branches) == 0 {
		branches = schema.OneOf
	}
	if len(branches) == 0 {
		return "", false
	}
	if len(branches) == 1 && branches[0] != nil && branches[0].Ref != "" {
		return tg.resolveRef(branches[0].Ref), true
	}
	return "", true
}

// itemType returns the Go element type for an array schema.
func (tg *typeGenerator) itemType(context string, schema *parser.Schema) string {
	if schema.Items == nil {
		return "any"
	}
	return tg.valueType(context+"[]", schema.Items)
}

// additionalPropertiesType returns the Go value type for a string-keyed
// map schema.
func (tg *typeGenerator) additionalPropertiesType(context string, schema *parser.Schema) string {
	if !schema.AdditionalProperties.HasSchema() {
		return "any"
	}
	return tg.valueType(context+".additionalProperties", schema.AdditionalProperties.Schema)
}

// valueType maps a nested value schema to a Go type, adding pointer
// indirection when the value admits null.
func (tg *typeGenerator) valueType(context string, schema *parser.Schema) string {
	goType := tg.schemaToGoType(context, schema)
	if schemautil.IsNullable(schema) && !isIndirect(goType) {
		return "*" + goType
	}
	return goType
}

// resolveRef resolves a $ref to a Go type name
func (tg *typeGenerator) resolveRef(ref string) string {
	name := ref
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		name = ref[idx+1:]
	}
	if typeName, ok := tg.typeFor[name]; ok {
		return typeName
	}
	return toTypeName(name)
}
