package extractor

import (
	"fmt"

	"github.com/nifikit/nifigen/parser"
)

// Option is a function that configures an extract operation
type Option func(*extractConfig) error

// extractConfig holds configuration for an extract operation
type extractConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	logger parser.Logger
}

// ExtractWithOptions extracts schemas using functional options.
//
// Example:
//
//	ext, err := extractor.ExtractWithOptions(
//	    extractor.WithParsed(patched.Parsed),
//	)
func ExtractWithOptions(opts ...Option) (*Extraction, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("extractor: invalid options: %w", err)
	}

	e := &Extractor{Logger: cfg.logger}

	if cfg.filePath != nil {
		return e.Extract(*cfg.filePath)
	}
	return e.ExtractParsed(cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*extractConfig, error) {
	cfg := &extractConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.parsed != nil {
		sources++
	}

	if sources == 0 {
		return nil, fmt.Errorf("no input source specified: use WithFilePath or WithParsed")
	}
	if sources > 1 {
		return nil, fmt.Errorf("multiple input sources specified: use only one of WithFilePath or WithParsed")
	}

	return cfg, nil
}

// WithFilePath specifies the specification file path to extract from
func WithFilePath(path string) Option {
	return func(cfg *extractConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already-parsed specification to extract from
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *extractConfig) error {
		if result == nil {
			return fmt.Errorf("parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(logger parser.Logger) Option {
	return func(cfg *extractConfig) error {
		cfg.logger = logger
		return nil
	}
}
