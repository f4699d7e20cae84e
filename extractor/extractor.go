// Package extractor turns a parsed (and usually patched) specification
// document into a typed, order-preserving schema collection ready for
// code generation.
package extractor

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/nifikit/nifigen/internal/nodeutil"
	"github.com/nifikit/nifigen/parser"
	"github.com/nifikit/nifigen/specerrors"
)

// Extraction is the typed view of components.schemas. Names holds the
// schema names in source document order; generated output iterates Names
// so the emit order is deterministic across runs.
type Extraction struct {
	// Names lists the schema names in the order they appear in the
	// source document
	Names []string
	// Schemas maps each name to its decoded schema
	Schemas map[string]*parser.Schema
	// SourcePath is the path to the source file
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
}

// Len returns the number of extracted schemas
func (e *Extraction) Len() int {
	return len(e.Names)
}

// Get returns the schema for the given name, or nil if absent
func (e *Extraction) Get(name string) *parser.Schema {
	return e.Schemas[name]
}

// RootSchema is the extraction wrapped as a single schema document whose
// definitions hold every extracted schema. Generators that expect one
// root container consume this form.
type RootSchema struct {
	// Order lists definition names in source document order
	Order []string
	// Definitions maps each name to its schema
	Definitions map[string]*parser.Schema
}

// Root wraps the extraction in a root schema container
func (e *Extraction) Root() *RootSchema {
	return &RootSchema{Order: e.Names, Definitions: e.Schemas}
}

// Extractor reads the schema section out of a specification document
type Extractor struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Extractor instance
func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) log() parser.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return parser.NopLogger{}
}

// Extract parses a specification file and extracts its schemas.
// The document is read as-is; callers that want the corrected document
// should patch first and use ExtractParsed.
func (e *Extractor) Extract(specPath string) (*Extraction, error) {
	p := parser.New()
	p.Logger = e.Logger

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("extractor: failed to parse specification: %w", err)
	}

	return e.ExtractParsed(parseResult)
}

// ExtractParsed extracts the schemas from an already-parsed document.
//
// Every entry of components.schemas decodes into a parser.Schema; the
// first entry that is not an object, or that fails to decode, aborts the
// extraction with a SchemaCastError naming it. There are no partial
// results.
func (e *Extractor) ExtractParsed(parseResult *parser.ParseResult) (*Extraction, error) {
	if parseResult == nil || parseResult.Document == nil {
		return nil, fmt.Errorf("extractor: specification could not be parsed (nil document)")
	}

	schemas, err := parseResult.Schemas()
	if err != nil {
		return nil, fmt.Errorf("extractor: %w", err)
	}

	extraction := &Extraction{
		Schemas:      make(map[string]*parser.Schema, len(schemas.Content)/2),
		SourcePath:   parseResult.SourcePath,
		SourceFormat: parseResult.SourceFormat,
	}

	for i := 0; i+1 < len(schemas.Content); i += 2 {
		name := schemas.Content[i].Value
		value := schemas.Content[i+1]

		schema, err := decodeSchema(name, value)
		if err != nil {
			return nil, fmt.Errorf("extractor: %w", err)
		}

		if _, seen := extraction.Schemas[name]; !seen {
			extraction.Names = append(extraction.Names, name)
		}
		extraction.Schemas[name] = schema
	}

	e.log().Debug("extracted schemas", "count", extraction.Len())
	return extraction, nil
}

// decodeSchema decodes one schema mapping value into its typed form.
func decodeSchema(name string, value *yaml.Node) (*parser.Schema, error) {
	if !nodeutil.IsMapping(value) {
		return nil, &specerrors.SchemaCastError{
			Schema:  name,
			Message: "schema value is not an object",
		}
	}

	// Round-trip through the YAML encoder rather than binding to the
	// node tree: the decode path is then identical for documents built
	// by the parser and trees rewritten by the patcher.
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, &specerrors.SchemaCastError{
			Schema:  name,
			Message: "failed to encode schema value",
			Cause:   err,
		}
	}

	var schema parser.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, &specerrors.SchemaCastError{
			Schema:  name,
			Message: "failed to decode schema value",
			Cause:   err,
		}
	}
	return &schema, nil
}
