package patcher

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/nifikit/nifigen/internal/nodeutil"
)

// nullableStringMaps normalizes every occurrence, anywhere in the schema
// tree, of an object-typed node whose additionalProperties child is a
// plain string schema. The NiFi server treats such maps as optional and
// their entries as nullable, so the node is marked nullable and the
// value type is widened from "string" to ["string", "null"].
type nullableStringMaps struct{}

// NullableStringMaps returns the generic patch for string-valued maps
// with unreliable presence semantics.
func NullableStringMaps() Patch {
	return nullableStringMaps{}
}

// Name implements Patch.
func (nullableStringMaps) Name() string {
	return "nullable-string-maps"
}

// Apply implements Patch. It walks every schema definition depth-first;
// rewrites are local and non-interacting, so traversal order does not
// affect the result.
func (p nullableStringMaps) Apply(schemas *yaml.Node, rec *Recorder) error {
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		p.walk(schemas.Content[i+1], schemas.Content[i].Value, rec)
	}
	return nil
}

// walk visits node and all of its descendants, rewriting each match.
// Nested schemas may be defective independent of their ancestors, so
// recursion continues whether or not the current node matched.
func (p nullableStringMaps) walk(node *yaml.Node, path string, rec *Recorder) {
	switch {
	case nodeutil.IsMapping(node):
		if ap := p.match(node); ap != nil {
			nodeutil.MapSet(node, "nullable", nodeutil.BoolScalar(true))
			nodeutil.MapSet(ap, "type", nodeutil.StringSequence("string", "null"))
			rec.Record(p.Name(), path,
				"marked string map nullable and widened value type to [string, null]")
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			p.walk(node.Content[i+1], path+"."+node.Content[i].Value, rec)
		}
	case nodeutil.IsSequence(node):
		for i, item := range node.Content {
			p.walk(item, fmt.Sprintf("%s[%d]", path, i), rec)
		}
	}
	// Scalars terminate recursion
}

// match tests the defect pattern on a mapping node and returns the
// additionalProperties child to rewrite, or nil if the node does not
// match. A boolean additionalProperties shorthand is skipped: the
// pattern requires a nested schema whose declared type can be
// inspected. An already-widened value type no longer matches, which is
// what makes the patch idempotent.
func (nullableStringMaps) match(node *yaml.Node) *yaml.Node {
	if !nodeutil.IsStringScalar(nodeutil.MapGet(node, "type"), "object") {
		return nil
	}
	ap := nodeutil.MapGet(node, "additionalProperties")
	if !nodeutil.IsMapping(ap) {
		return nil
	}
	if !nodeutil.IsStringScalar(nodeutil.MapGet(ap, "type"), "string") {
		return nil
	}
	return ap
}
