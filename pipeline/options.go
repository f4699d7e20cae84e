package pipeline

import (
	"fmt"

	"github.com/nifikit/nifigen/parser"
	"github.com/nifikit/nifigen/patcher"
)

// Option is a function that configures a pipeline run
type Option func(*runConfig) error

// runConfig holds configuration for a pipeline run
type runConfig struct {
	specPath    string
	outputDir   string
	packageName string
	patches     []patcher.Patch
	logger      parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*runConfig, error) {
	cfg := &runConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.specPath == "" {
		return nil, fmt.Errorf("no specification path: use WithSpecPath")
	}

	return cfg, nil
}

// WithSpecPath specifies the specification file to run the pipeline on
func WithSpecPath(path string) Option {
	return func(cfg *runConfig) error {
		if path == "" {
			return fmt.Errorf("specification path cannot be empty")
		}
		cfg.specPath = path
		return nil
	}
}

// WithOutputDir enables the generate stage and sets the directory the
// generated files are written to
func WithOutputDir(dir string) Option {
	return func(cfg *runConfig) error {
		if dir == "" {
			return fmt.Errorf("output directory cannot be empty")
		}
		cfg.outputDir = dir
		return nil
	}
}

// WithPackageName sets the Go package name for generated code
func WithPackageName(name string) Option {
	return func(cfg *runConfig) error {
		cfg.packageName = name
		return nil
	}
}

// WithPatches overrides the default patch registry
func WithPatches(patches ...patcher.Patch) Option {
	return func(cfg *runConfig) error {
		cfg.patches = patches
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(logger parser.Logger) Option {
	return func(cfg *runConfig) error {
		cfg.logger = logger
		return nil
	}
}
