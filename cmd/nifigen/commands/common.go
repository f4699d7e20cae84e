// Package commands provides CLI command handlers for nifigen.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	"github.com/nifikit/nifigen/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatText, FormatJSON)
	}
	return nil
}

// OutputJSON writes data as indented JSON to stdout.
func OutputJSON(data any) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling to json: %w", err)
	}
	fmt.Println(string(bytes))
	return nil
}

// MarshalDocument marshals a parsed document to bytes in its source
// format, preserving the source key order.
func MarshalDocument(parsed *parser.ParseResult) ([]byte, error) {
	if parsed.SourceFormat == parser.SourceFormatYAML {
		return parsed.MarshalOrderedYAML()
	}
	return parsed.MarshalOrderedJSONIndent("", "  ")
}

// NewLogger returns a debug-level logger writing to stderr when verbose
// is set, otherwise nil (logging disabled).
func NewLogger(verbose bool) parser.Logger {
	if !verbose {
		return nil
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
