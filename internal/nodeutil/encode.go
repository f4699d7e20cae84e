package nodeutil

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// EncodeJSON serializes a node tree to compact JSON, preserving mapping
// key order from the source document.
func EncodeJSON(node *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSONIndent serializes a node tree to indented JSON, preserving
// mapping key order from the source document.
func EncodeJSONIndent(node *yaml.Node, prefix, indent string) ([]byte, error) {
	data, err := EncodeJSON(node)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			return encodeJSON(buf, node.Content[0])
		}
		buf.WriteString("null")
		return nil

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := encodeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return encodeScalarJSON(buf, node)

	case yaml.AliasNode:
		return encodeJSON(buf, node.Alias)

	default:
		return fmt.Errorf("nodeutil: cannot encode node kind %d as JSON", node.Kind)
	}
}

// encodeScalarJSON writes a scalar node as a JSON value based on its
// resolved YAML tag. Numbers that JSON cannot represent (e.g. .inf from
// a YAML source) are rejected rather than silently stringified.
func encodeScalarJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return fmt.Errorf("nodeutil: invalid bool scalar %q: %w", node.Value, err)
		}
		buf.WriteString(strconv.FormatBool(b))
		return nil
	case "!!int":
		if _, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			buf.WriteString(node.Value)
			return nil
		}
		// Non-decimal integer forms (0x..., 0o...) need re-encoding
		var v int64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("nodeutil: invalid int scalar %q: %w", node.Value, err)
		}
		buf.WriteString(strconv.FormatInt(v, 10))
		return nil
	case "!!float":
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("nodeutil: invalid float scalar %q: %w", node.Value, err)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("nodeutil: float scalar %q not representable in JSON: %w", node.Value, err)
		}
		buf.Write(data)
		return nil
	default:
		data, err := json.Marshal(node.Value)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}
