package patcher

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/nifikit/nifigen/parser"
)

// Patch is a named, idempotent correction rule over the
// components.schemas mapping.
//
// Apply receives a mutable handle to the schemas mapping node and
// rewrites defective subtrees in place, recording every rewrite. A patch
// must not depend on the order of keys within the schemas mapping, only
// on its own position in the registry. Applying the same patch twice
// must produce the same result as applying it once.
type Patch interface {
	// Name identifies the patch in results and logs
	Name() string
	// Apply rewrites the schemas mapping in place
	Apply(schemas *yaml.Node, rec *Recorder) error
}

// Applied describes a single rewrite performed by a patch
type Applied struct {
	// Patch is the name of the patch that performed the rewrite
	Patch string
	// Path is the dotted path to the rewritten node within the schemas
	// mapping (e.g., "ProcessorConfigDTO.properties.properties")
	Path string
	// Description is a human-readable description of the rewrite
	Description string
}

// Recorder collects the rewrites performed during a patch run
type Recorder struct {
	applied []Applied
}

// Record appends one rewrite to the run's record
func (r *Recorder) Record(patch, path, description string) {
	r.applied = append(r.applied, Applied{Patch: patch, Path: path, Description: description})
}

// PatchResult contains the results of a patch operation
type PatchResult struct {
	// Parsed is the parse result whose document tree was patched in place
	Parsed *parser.ParseResult
	// SourcePath is the path to the source file
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// Applied contains one entry per rewrite, in application order
	Applied []Applied
	// PatchCount is the total number of rewrites applied
	PatchCount int
	// Success is true if patching completed without errors
	Success bool
}

// HasPatches returns true if any rewrites were applied
func (r *PatchResult) HasPatches() bool {
	return r.PatchCount > 0
}

// Patcher applies the patch registry to a specification document
type Patcher struct {
	// Patches is the ordered registry to apply.
	// If nil or empty, DefaultPatches() is used.
	Patches []Patch
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Patcher instance with the default patch registry
func New() *Patcher {
	return &Patcher{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (pt *Patcher) log() parser.Logger {
	if pt.Logger != nil {
		return pt.Logger
	}
	return parser.NopLogger{}
}

// patches returns the effective registry for a run.
func (pt *Patcher) patches() []Patch {
	if len(pt.Patches) > 0 {
		return pt.Patches
	}
	return DefaultPatches()
}

// Patch parses a specification file and applies the registry to it
func (pt *Patcher) Patch(specPath string) (*PatchResult, error) {
	p := parser.New()
	p.Logger = pt.Logger

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("patcher: failed to parse specification: %w", err)
	}

	return pt.PatchParsed(parseResult)
}

// PatchParsed applies the registry to an already-parsed specification.
//
// The document tree is mutated in place; the caller is the tree's sole
// owner for the duration of a run and no copy is made. The
// engine locates components.schemas, failing with a MissingSectionError
// if it is absent, then applies every patch in registration order. The
// first failing patch aborts the run; there is no rollback.
func (pt *Patcher) PatchParsed(parseResult *parser.ParseResult) (*PatchResult, error) {
	if parseResult == nil || parseResult.Document == nil {
		return nil, fmt.Errorf("patcher: specification could not be parsed (nil document)")
	}

	schemas, err := parseResult.Schemas()
	if err != nil {
		return nil, fmt.Errorf("patcher: %w", err)
	}

	result := &PatchResult{
		Parsed:       parseResult,
		SourcePath:   parseResult.SourcePath,
		SourceFormat: parseResult.SourceFormat,
	}

	rec := &Recorder{}
	for _, patch := range pt.patches() {
		before := len(rec.applied)
		if err := patch.Apply(schemas, rec); err != nil {
			return nil, fmt.Errorf("patcher: patch %s: %w", patch.Name(), err)
		}
		pt.log().Debug("applied patch",
			"patch", patch.Name(), "rewrites", len(rec.applied)-before)
	}

	result.Applied = rec.applied
	result.PatchCount = len(rec.applied)
	result.Success = true
	return result, nil
}
