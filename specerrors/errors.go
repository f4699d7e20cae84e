// Package specerrors provides structured error types for nifigen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(). Every condition they describe is a build-time failure: the
// specification document is a build input, so the pipeline aborts on the
// first error rather than producing partial or corrupt output.
//
// # Error Categories
//
//   - ParseError: the specification text is not well-formed JSON or YAML
//   - MissingSectionError: a required document section is absent
//   - PathResolutionError: a targeted patch path could not be navigated
//   - SchemaCastError: a schemas entry cannot be read as a schema definition
//
// # Usage with errors.Is
//
//	result, err := patcher.PatchWithOptions(patcher.WithFilePath("swagger.json"))
//	if err != nil {
//	    var pathErr *specerrors.PathResolutionError
//	    if errors.As(err, &pathErr) {
//	        // The upstream specification changed shape; pathErr.Segment
//	        // names the step that no longer resolves.
//	    }
//	}
package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrMissingSection indicates a required document section is absent.
	ErrMissingSection = errors.New("missing section")

	// ErrPathResolution indicates a targeted patch path failed to resolve.
	ErrPathResolution = errors.New("path resolution error")

	// ErrSchemaCast indicates a schemas entry could not be read as a schema.
	ErrSchemaCast = errors.New("schema cast error")
)

// ParseError represents a failure to parse the specification document.
// This includes JSON/YAML deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure, carrying the raw parser message
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// MissingSectionError represents a document that lacks a section the
// pipeline requires. This is a build-time precondition violation: the
// pipeline halts rather than emitting types from a malformed document.
type MissingSectionError struct {
	// Section is the dotted path of the missing section
	// (e.g., "components.schemas")
	Section string
	// Path is the source path of the offending document
	Path string
}

// Error returns a human-readable error message.
func (e *MissingSectionError) Error() string {
	msg := "missing section"
	if e.Section != "" {
		msg += " " + e.Section
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	return msg
}

// Unwrap returns nil as MissingSectionError has no underlying cause.
func (e *MissingSectionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MissingSectionError) Is(target error) bool {
	return target == ErrMissingSection
}

// PathResolutionError represents a targeted patch whose fixed path no
// longer resolves. It names the exact segment that failed so the patch
// can be updated when the upstream specification changes shape.
type PathResolutionError struct {
	// Schema is the schema name the patch is addressed to
	Schema string
	// Field is the field name within the schema
	Field string
	// Segment is the path segment that could not be resolved
	Segment string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *PathResolutionError) Error() string {
	msg := "path resolution error"
	if e.Segment != "" {
		msg += fmt.Sprintf(": cannot resolve %q", e.Segment)
	}
	if e.Schema != "" {
		msg += fmt.Sprintf(" in schema %q", e.Schema)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %q", e.Field)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as PathResolutionError has no underlying cause.
func (e *PathResolutionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PathResolutionError) Is(target error) bool {
	return target == ErrPathResolution
}

// SchemaCastError represents a components.schemas entry that cannot be
// interpreted as a schema definition.
type SchemaCastError struct {
	// Schema is the name of the offending schemas entry
	Schema string
	// Message describes why the entry could not be read
	Message string
	// Cause is the underlying decode error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaCastError) Error() string {
	msg := "schema cast error"
	if e.Schema != "" {
		msg += fmt.Sprintf(": schema %q", e.Schema)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaCastError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaCastError) Is(target error) bool {
	return target == ErrSchemaCast
}
