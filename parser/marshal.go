package parser

import (
	"go.yaml.in/yaml/v4"

	"github.com/nifikit/nifigen/internal/nodeutil"
)

// MarshalOrderedJSON marshals the document to compact JSON with fields in
// the same order as the original source document.
//
// Patches mutate the tree in place, so the output reflects all rewrites
// applied since parsing while keeping every untouched node byte-for-byte
// identical to the source.
func (pr *ParseResult) MarshalOrderedJSON() ([]byte, error) {
	return nodeutil.EncodeJSON(pr.Document)
}

// MarshalOrderedJSONIndent marshals the document to indented JSON with
// fields in the same order as the original source document.
func (pr *ParseResult) MarshalOrderedJSONIndent(prefix, indent string) ([]byte, error) {
	return nodeutil.EncodeJSONIndent(pr.Document, prefix, indent)
}

// MarshalOrderedYAML marshals the document to YAML with fields in the
// same order as the original source document.
func (pr *ParseResult) MarshalOrderedYAML() ([]byte, error) {
	return yaml.Marshal(pr.Document)
}
