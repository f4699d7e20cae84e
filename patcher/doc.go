// Package patcher corrects known defects in the specification's
// components.schemas section before type extraction.
//
// The NiFi REST API specification declares several string-valued map
// fields whose entries the server omits or returns as null at runtime.
// Each known defect class is corrected by a named, idempotent Patch.
// Patches are applied in registration order by the engine; they only add
// or normalize attributes, never toggle them, so applying the registry
// twice yields the same document as applying it once.
//
// The engine performs no rollback: a failing patch aborts the whole run.
// The specification is a build input, so every failure is fatal by
// design and there is no retry path.
//
// # Quick Start
//
//	result, err := patcher.PatchWithOptions(
//	    patcher.WithFilePath("swagger.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range result.Applied {
//	    fmt.Printf("%s: %s\n", a.Patch, a.Path)
//	}
//
// Adding a correction rule for a new defect class means implementing the
// Patch interface and registering the value in DefaultPatches; existing
// patches are never removed when new ones are added.
package patcher
