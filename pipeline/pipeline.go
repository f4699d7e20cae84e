// Package pipeline wires the parse, patch, extract and generate stages
// into a single forward-only run. Each stage consumes the previous
// stage's artifact; the first failure terminates the run. The pipeline
// is synchronous and is the sole owner of the document tree for the
// duration of a run.
package pipeline

import (
	"fmt"

	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/generator"
	"github.com/nifikit/nifigen/parser"
	"github.com/nifikit/nifigen/patcher"
)

// State identifies how far a pipeline run progressed
type State int

const (
	// StateInitial is the state before the document is loaded
	StateInitial State = iota
	// StateLoaded means the document parsed successfully
	StateLoaded
	// StatePatched means the patch registry was applied
	StatePatched
	// StateExtracted means the schema collection was extracted
	StateExtracted
	// StateGenerated means type declarations were generated
	StateGenerated
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateLoaded:
		return "loaded"
	case StatePatched:
		return "patched"
	case StateExtracted:
		return "extracted"
	case StateGenerated:
		return "generated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result holds the artifacts of a completed pipeline run
type Result struct {
	// State is the final state the run reached
	State State
	// Parsed is the parse stage artifact
	Parsed *parser.ParseResult
	// Patched is the patch stage artifact
	Patched *patcher.PatchResult
	// Extraction is the extract stage artifact
	Extraction *extractor.Extraction
	// Generated is the generate stage artifact, set only when an output
	// directory or package name was configured
	Generated *generator.GenerateResult
}

// Run executes the pipeline for a specification file.
//
// The document is parsed, corrected by the patch registry, and its
// schemas extracted in source order. When an output directory is
// configured the extraction also feeds the type generator and the
// generated files are written out.
func Run(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: invalid options: %w", err)
	}

	result := &Result{State: StateInitial}

	p := parser.New()
	p.Logger = cfg.logger
	parsed, err := p.Parse(cfg.specPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load: %w", err)
	}
	result.Parsed = parsed
	result.State = StateLoaded

	pt := &patcher.Patcher{Patches: cfg.patches, Logger: cfg.logger}
	patched, err := pt.PatchParsed(parsed)
	if err != nil {
		return nil, fmt.Errorf("pipeline: patch: %w", err)
	}
	result.Patched = patched
	result.State = StatePatched

	e := &extractor.Extractor{Logger: cfg.logger}
	ext, err := e.ExtractParsed(parsed)
	if err != nil {
		return nil, fmt.Errorf("pipeline: extract: %w", err)
	}
	result.Extraction = ext
	result.State = StateExtracted

	if cfg.outputDir == "" {
		return result, nil
	}

	g := &generator.Generator{PackageName: cfg.packageName, Logger: cfg.logger}
	generated, err := g.Generate(ext)
	if err != nil {
		return nil, fmt.Errorf("pipeline: generate: %w", err)
	}
	if err := generated.WriteFiles(cfg.outputDir); err != nil {
		return nil, fmt.Errorf("pipeline: generate: %w", err)
	}
	result.Generated = generated
	result.State = StateGenerated

	return result, nil
}
