package parser

// Schema represents a single type definition from the specification's
// components.schemas section. It covers the JSON-Schema subset that the
// NiFi document actually uses (OAS 3.0 with the nullable extension, plus
// type arrays produced by the patcher's ["string","null"] rewrites).
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type any   `yaml:"type,omitempty" json:"type,omitempty"` // string or []string
	Enum []any `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Array validation
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema    `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *AdditionalProperties `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string              `yaml:"required,omitempty" json:"required,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific extensions
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Example    any  `yaml:"example,omitempty" json:"example,omitempty"`

	// Format
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // e.g., "int64", "date-time"

	// Extension fields
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// AdditionalProperties represents the additionalProperties keyword, which
// is either a boolean shorthand or a nested schema describing the value
// type of an open-ended string-keyed map.
type AdditionalProperties struct {
	// Allowed is set when the keyword used the boolean shorthand
	Allowed *bool
	// Schema is set when the keyword carried a nested schema
	Schema *Schema
}

// UnmarshalYAML implements custom unmarshaling for the two encodings of
// additionalProperties.
func (ap *AdditionalProperties) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		ap.Allowed = &b
		ap.Schema = nil
		return nil
	}

	var s Schema
	if err := unmarshal(&s); err != nil {
		return err
	}
	ap.Allowed = nil
	ap.Schema = &s
	return nil
}

// IsBool reports whether the keyword used the boolean shorthand.
func (ap *AdditionalProperties) IsBool() bool {
	return ap != nil && ap.Allowed != nil
}

// HasSchema reports whether the keyword carried a nested schema.
func (ap *AdditionalProperties) HasSchema() bool {
	return ap != nil && ap.Schema != nil
}

// IsRequired reports whether the named property is in the schema's
// required list.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// IsStringEnum reports whether the schema is a string type with a
// non-empty enum list.
func (s *Schema) IsStringEnum() bool {
	if s == nil || len(s.Enum) == 0 {
		return false
	}
	for _, e := range s.Enum {
		if _, ok := e.(string); !ok {
			return false
		}
	}
	return true
}
