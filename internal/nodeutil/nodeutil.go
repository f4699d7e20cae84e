// Package nodeutil provides helpers for navigating and mutating the
// yaml.Node document tree that the rest of nifigen operates on.
//
// The specification document is held as a yaml.Node tree rather than a
// map so that mapping key order survives the round trip from source text
// to generated code. Mapping nodes store keys and values as alternating
// entries in Content; these helpers hide that layout.
package nodeutil

import "go.yaml.in/yaml/v4"

// Root unwraps a DocumentNode and returns the underlying content node.
// Any other node kind is returned unchanged.
func Root(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return node.Content[0]
	}
	return node
}

// IsMapping reports whether node is a mapping node.
func IsMapping(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.MappingNode
}

// IsSequence reports whether node is a sequence node.
func IsSequence(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.SequenceNode
}

// IsScalar reports whether node is a scalar node.
func IsScalar(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode
}

// IsStringScalar reports whether node is a scalar with the given string value.
func IsStringScalar(node *yaml.Node, value string) bool {
	return IsScalar(node) && node.Tag == "!!str" && node.Value == value
}

// MapGet returns the value node for key in a mapping node, or nil if the
// key is absent or node is not a mapping.
func MapGet(node *yaml.Node, key string) *yaml.Node {
	if !IsMapping(node) {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode && node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// MapSet sets key to value in a mapping node, replacing an existing value
// node or appending a new key/value pair. Replacement keeps the key's
// original position so document order is preserved.
func MapSet(node *yaml.Node, key string, value *yaml.Node) {
	if !IsMapping(node) {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode && node.Content[i].Value == key {
			node.Content[i+1] = value
			return
		}
	}
	node.Content = append(node.Content, StringScalar(key), value)
}

// Keys returns the mapping's keys in document order.
func Keys(node *yaml.Node) []string {
	if !IsMapping(node) {
		return nil
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, node.Content[i].Value)
		}
	}
	return keys
}

// Index builds a key-to-value-node index for O(1) child lookup in a
// mapping node. Returns nil for non-mapping nodes.
func Index(node *yaml.Node) map[string]*yaml.Node {
	if !IsMapping(node) {
		return nil
	}
	idx := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode {
			idx[node.Content[i].Value] = node.Content[i+1]
		}
	}
	return idx
}

// StringScalar creates a string scalar node.
func StringScalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// BoolScalar creates a boolean scalar node.
func BoolScalar(value bool) *yaml.Node {
	v := "false"
	if value {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}

// StringSequence creates a sequence node of string scalars.
func StringSequence(values ...string) *yaml.Node {
	content := make([]*yaml.Node, 0, len(values))
	for _, v := range values {
		content = append(content, StringScalar(v))
	}
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: content}
}

// SequenceContains reports whether a sequence node contains a string
// scalar with the given value.
func SequenceContains(node *yaml.Node, value string) bool {
	if !IsSequence(node) {
		return false
	}
	for _, item := range node.Content {
		if IsStringScalar(item, value) {
			return true
		}
	}
	return false
}
