package mcpserver

import (
	"fmt"

	"github.com/nifikit/nifigen/parser"
)

// specInput is the shared document input accepted by every tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// parseSpecInput resolves a spec input to a parse result.
func parseSpecInput(in specInput) (*parser.ParseResult, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("provide only one of file or content")
	case in.File != "":
		return parser.ParseWithOptions(parser.WithFilePath(in.File))
	case in.Content != "":
		return parser.ParseWithOptions(parser.WithBytes([]byte(in.Content)))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}
