package generator

import (
	"fmt"

	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/parser"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	extraction  *extractor.Extraction
	packageName string
	logger      parser.Logger
}

// GenerateWithOptions generates type declarations using functional
// options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithExtraction(ext),
//	    generator.WithPackageName("nifi"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg := &generateConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("generator: invalid options: %w", err)
		}
	}
	if cfg.extraction == nil {
		return nil, fmt.Errorf("generator: invalid options: no extraction specified: use WithExtraction")
	}

	g := &Generator{
		PackageName: cfg.packageName,
		Logger:      cfg.logger,
	}
	return g.Generate(cfg.extraction)
}

// WithExtraction specifies the extracted schemas to generate from
func WithExtraction(ext *extractor.Extraction) Option {
	return func(cfg *generateConfig) error {
		if ext == nil {
			return fmt.Errorf("extraction cannot be nil")
		}
		cfg.extraction = ext
		return nil
	}
}

// WithPackageName sets the Go package name for generated code
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.packageName = name
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(logger parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = logger
		return nil
	}
}
