// Package parser loads the NiFi REST API specification document into a
// mutable, order-preserving tree.
//
// The document is held as a yaml.Node tree rather than a map so that the
// key order of components.schemas survives from source text through
// patching and extraction to generated code. Deterministic output is a
// correctness requirement for generated types, not a cosmetic one.
//
// The parser performs no semantic validation: any syntactically valid
// document is accepted. Structural preconditions (such as the presence of
// components.schemas) are checked by the downstream stages that need them.
package parser

import (
	"errors"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/nifikit/nifigen/internal/nodeutil"
	"github.com/nifikit/nifigen/specerrors"
)

// Parser handles specification document parsing
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed specification document and metadata.
//
// The Document tree is mutable and has a single owner for the duration of
// a pipeline run: the patcher rewrites it in place, the extractor then
// reads it, and it is discarded when the run completes. It is never
// shared across runs or goroutines.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// If the source was not a file path, this is a synthetic name ending in
	// '.yaml' or '.json' based on the detected format.
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// Document is the parsed document tree (a yaml DocumentNode)
	Document *yaml.Node
}

// Root returns the document's top-level mapping node, or nil if the
// document is empty.
func (pr *ParseResult) Root() *yaml.Node {
	return nodeutil.Root(pr.Document)
}

// Schemas returns the components.schemas mapping node, or an error naming
// the missing section if either step of the path is absent or not an
// object. The returned node is a mutable handle into the document tree.
func (pr *ParseResult) Schemas() (*yaml.Node, error) {
	root := pr.Root()
	components := nodeutil.MapGet(root, "components")
	if !nodeutil.IsMapping(components) {
		return nil, &specerrors.MissingSectionError{Section: "components", Path: pr.SourcePath}
	}
	schemas := nodeutil.MapGet(components, "schemas")
	if !nodeutil.IsMapping(schemas) {
		return nil, &specerrors.MissingSectionError{Section: "components.schemas", Path: pr.SourcePath}
	}
	return schemas, nil
}

// Parse parses a specification file from a local path
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	format := detectFormatFromPath(specPath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	p.log().Debug("loaded specification",
		"path", specPath, "format", string(format), "size", len(data))

	result, err := p.parseBytes(data, specPath, format)
	if err != nil {
		return nil, err
	}
	result.LoadTime = loadTime
	return result, nil
}

// ParseBytes parses a specification from raw bytes
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	format := detectFormatFromContent(data)

	// Synthesize a source path based on the detected format
	sourcePath := "ParseBytes.yaml"
	if format == SourceFormatJSON {
		sourcePath = "ParseBytes.json"
	}

	return p.parseBytes(data, sourcePath, format)
}

// parseBytes parses raw specification data into the document tree.
func (p *Parser) parseBytes(data []byte, sourcePath string, format SourceFormat) (*ParseResult, error) {
	// JSON sources get a syntax check first so ParseError carries the raw
	// JSON parser message with an exact position. The YAML layer accepts
	// JSON too, but its errors describe YAML constructs.
	if format == SourceFormatJSON {
		if err := checkJSONSyntax(data, sourcePath); err != nil {
			return nil, err
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &specerrors.ParseError{
			Path:    sourcePath,
			Message: err.Error(),
			Cause:   err,
		}
	}

	p.log().Debug("parsed specification document", "path", sourcePath)

	return &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		SourceSize:   int64(len(data)),
		Document:     &doc,
	}, nil
}

// checkJSONSyntax validates that data is well-formed JSON, translating
// syntax failures into a ParseError with line/column positions.
func checkJSONSyntax(data []byte, sourcePath string) error {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		return nil
	}

	perr := &specerrors.ParseError{
		Path:    sourcePath,
		Message: err.Error(),
		Cause:   err,
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		perr.Line, perr.Column = offsetToPosition(data, syntaxErr.Offset)
	}
	return perr
}

// offsetToPosition converts a byte offset into 1-based line and column.
func offsetToPosition(data []byte, offset int64) (line, column int) {
	if offset < 0 || offset > int64(len(data)) {
		return 0, 0
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
