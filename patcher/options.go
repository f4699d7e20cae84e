package patcher

import (
	"fmt"

	"github.com/nifikit/nifigen/parser"
)

// Option is a function that configures a patch operation
type Option func(*patchConfig) error

// patchConfig holds configuration for a patch operation
type patchConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	patches []Patch
	logger  parser.Logger
}

// PatchWithOptions patches a specification using functional options.
// This provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	result, err := patcher.PatchWithOptions(
//	    patcher.WithFilePath("swagger.json"),
//	)
func PatchWithOptions(opts ...Option) (*PatchResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("patcher: invalid options: %w", err)
	}

	pt := &Patcher{
		Patches: cfg.patches,
		Logger:  cfg.logger,
	}

	if cfg.filePath != nil {
		return pt.Patch(*cfg.filePath)
	}
	return pt.PatchParsed(cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*patchConfig, error) {
	cfg := &patchConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate that exactly one input source is specified
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

// WithFilePath specifies the specification file path to patch
func WithFilePath(path string) Option {
	return func(cfg *patchConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already-parsed specification to patch.
// The parse result's document tree is mutated in place.
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *patchConfig) error {
		if result == nil {
			return fmt.Errorf("parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithPatches overrides the default patch registry.
// Patches are applied in the order given.
func WithPatches(patches ...Patch) Option {
	return func(cfg *patchConfig) error {
		cfg.patches = patches
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(logger parser.Logger) Option {
	return func(cfg *patchConfig) error {
		cfg.logger = logger
		return nil
	}
}
