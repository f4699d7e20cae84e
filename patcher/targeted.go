package patcher

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/nifikit/nifigen/internal/nodeutil"
	"github.com/nifikit/nifigen/specerrors"
)

// TargetedPatch corrects one specific, known-bad field by exact path:
// schemas[Schema].properties[Field].additionalProperties. It is used
// when a defect is pinned to a named field rather than a recognizable
// shape.
//
// Navigation failures are fatal: a missing segment means the upstream
// specification changed shape, and the patch must be updated rather
// than silently skipped.
type TargetedPatch struct {
	// Schema is the name of the schemas entry to correct
	Schema string
	// Field is the property within the schema to correct
	Field string
}

// Name implements Patch.
func (p TargetedPatch) Name() string {
	return fmt.Sprintf("targeted:%s.%s", p.Schema, p.Field)
}

// Apply implements Patch. It resolves each path segment in turn, failing
// with a PathResolutionError naming the first segment that is missing or
// has the wrong shape. On success the field is marked nullable and its
// additionalProperties value type is widened to ["string", "null"]; when
// the value type is not a plain string schema, the nullable marker is
// set on the value schema instead. The downstream generator treats both
// encodings as equivalent.
func (p TargetedPatch) Apply(schemas *yaml.Node, rec *Recorder) error {
	schemaNode := nodeutil.MapGet(schemas, p.Schema)
	if !nodeutil.IsMapping(schemaNode) {
		return p.unresolved(p.Schema)
	}

	props := nodeutil.MapGet(schemaNode, "properties")
	if !nodeutil.IsMapping(props) {
		return p.unresolved("properties")
	}

	field := nodeutil.MapGet(props, p.Field)
	if !nodeutil.IsMapping(field) {
		return p.unresolved(p.Field)
	}

	ap := nodeutil.MapGet(field, "additionalProperties")
	if ap == nil {
		return p.unresolved("additionalProperties")
	}

	changed := false
	if !isNullableTrue(field) {
		nodeutil.MapSet(field, "nullable", nodeutil.BoolScalar(true))
		changed = true
	}

	apType := nodeutil.MapGet(ap, "type")
	switch {
	case nodeutil.IsStringScalar(apType, "string"):
		nodeutil.MapSet(ap, "type", nodeutil.StringSequence("string", "null"))
		changed = true
	case nodeutil.SequenceContains(apType, "null"):
		// Value nullability is already encoded in the type set, typically
		// because the generic string-map patch ran first. Nothing to add.
	case nodeutil.IsMapping(ap):
		if !isNullableTrue(ap) {
			nodeutil.MapSet(ap, "nullable", nodeutil.BoolScalar(true))
			changed = true
		}
	}

	if changed {
		rec.Record(p.Name(), p.Schema+".properties."+p.Field,
			"marked field nullable and encoded nullable map values")
	}
	return nil
}

// unresolved builds the fatal navigation error for a failed segment.
func (p TargetedPatch) unresolved(segment string) error {
	return &specerrors.PathResolutionError{
		Schema:  p.Schema,
		Field:   p.Field,
		Segment: segment,
	}
}

// isNullableTrue reports whether a mapping node already carries
// nullable: true.
func isNullableTrue(node *yaml.Node) bool {
	v := nodeutil.MapGet(node, "nullable")
	return v != nil && v.Tag == "!!bool" && v.Value == "true"
}
