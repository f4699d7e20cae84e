// Package nifigen prepares the Apache NiFi REST API specification for Go
// code generation.
//
// The NiFi project publishes a large OpenAPI document describing every
// endpoint of its REST API. That document is not internally consistent:
// several schema definitions declare string-valued maps whose entries the
// server omits or returns as null at runtime. Generating Go types directly
// from the raw document therefore produces types that fail to unmarshal
// real server responses.
//
// nifigen runs a correction pipeline over the document before any code is
// generated:
//
//   - parser: loads the raw specification into a mutable, order-preserving
//     document tree
//   - patcher: applies an ordered registry of named, idempotent patches to
//     the components.schemas section
//   - extractor: re-reads the corrected schemas as an ordered mapping from
//     schema name to schema definition
//   - generator: turns the extracted definitions into formatted Go type
//     declarations
//   - pipeline: drives the stages end to end
//
// # Quick Start
//
// Run the full pipeline against a specification file:
//
//	import "github.com/nifikit/nifigen/pipeline"
//
//	result, err := pipeline.Run(
//	    pipeline.WithSpecPath("swagger.json"),
//	    pipeline.WithOutputDir("internal/api"),
//	    pipeline.WithPackageName("api"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("generated %d types from %d schemas\n",
//	    result.Generated.GeneratedTypes, result.Extraction.Len())
//
// Or drive the stages individually:
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("swagger.json"))
//	patched, err := patcher.PatchWithOptions(patcher.WithParsed(parsed))
//	extracted, err := extractor.ExtractWithOptions(extractor.WithParsed(patched.Parsed))
//
// # Command-Line Interface
//
// The nifigen command exposes the same stages:
//
//	# Apply patches and write the corrected document
//	nifigen patch -o corrected.json swagger.json
//
//	# List extracted schemas in definition order
//	nifigen extract swagger.json
//
//	# Generate Go types
//	nifigen generate -o ./api -package api swagger.json
//
// Install the CLI:
//
//	go install github.com/nifikit/nifigen/cmd/nifigen@latest
//
// # Error Handling
//
// Every failure in the pipeline is fatal for that run. The specification is
// a build input, not runtime data, so the pipeline fails fast rather than
// emitting corrupt types. See the specerrors package for the structured
// error kinds and their sentinels.
package nifigen
