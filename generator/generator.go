// Package generator emits Go type declarations from an extracted schema
// collection. Output is deterministic: types appear in source document
// order and struct fields in sorted property order, so regenerating from
// an unchanged document produces byte-identical output.
package generator

import (
	"fmt"

	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/parser"
)

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "types.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateIssue describes a construct that did not generate cleanly
type GenerateIssue struct {
	// Context names the schema or field the issue applies to
	Context string
	// Message describes the issue
	Message string
}

func (i GenerateIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Context, i.Message)
}

// GenerateResult contains the results of generating code from an
// extracted schema collection
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// PackageName is the Go package name used in generation
	PackageName string
	// GeneratedTypes is the count of type declarations generated
	GeneratedTypes int
	// Issues lists constructs that fell back to a loose representation
	Issues []GenerateIssue
	// Success is true if generation completed and the output formatted
	// cleanly
	Success bool
}

// HasIssues returns true if any generation issues were recorded
func (r *GenerateResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles type generation from extracted schemas
type Generator struct {
	// PackageName is the Go package name for generated code
	// If empty, defaults to "nifi"
	PackageName string

	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Generator instance
func New() *Generator {
	return &Generator{}
}

func (g *Generator) log() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

func (g *Generator) packageName() string {
	if g.PackageName != "" {
		return g.PackageName
	}
	return "nifi"
}

// Generate emits Go type declarations for every schema in the extraction
func (g *Generator) Generate(ext *extractor.Extraction) (*GenerateResult, error) {
	if ext == nil {
		return nil, fmt.Errorf("generator: extraction is nil")
	}

	result := &GenerateResult{PackageName: g.packageName()}

	tg := &typeGenerator{
		root:    ext.Root(),
		result:  result,
		typeFor: buildTypeNames(ext.Names),
	}

	if err := tg.generateTypesFile("types.go"); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result.Success = true
	g.log().Debug("generated types",
		"types", result.GeneratedTypes, "issues", len(result.Issues))
	return result, nil
}

// buildTypeNames maps each schema name to its Go type name, suffixing
// duplicates that collapse to the same identifier.
func buildTypeNames(names []string) map[string]string {
	typeFor := make(map[string]string, len(names))
	used := make(map[string]bool, len(names))

	for _, name := range names {
		goName := toTypeName(name)
		for used[goName] {
			goName += "_"
		}
		used[goName] = true
		typeFor[name] = goName
	}
	return typeFor
}
