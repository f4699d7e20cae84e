package patcher

// DefaultPatches returns the patch registry in application order.
//
// The registry is rebuilt fresh per call so a run can never observe
// another run's mutations. Order matters: the generic string-map patch
// runs first, and the targeted patch then verifies that its known-bad
// field still exists, failing the build if the upstream specification
// changed shape.
//
// ProcessorConfigDTO.properties predates the generic rule: NiFi returns
// null entries in that map even though the document declares plain
// string values, and the targeted patch keeps the build honest about
// the field's continued existence.
func DefaultPatches() []Patch {
	return []Patch{
		NullableStringMaps(),
		TargetedPatch{Schema: "ProcessorConfigDTO", Field: "properties"},
	}
}
