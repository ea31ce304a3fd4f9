package jsonschema

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	Schema string `json:"$schema,omitempty"`
	Title  string `json:"title,omitempty"`

	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Draft is the dialect URI stamped on exported root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Float32 describes a single-precision component.
func Float32() *Schema { return &Schema{Type: "number", Format: "float"} }

// FixedArray describes a sequence of exactly n items.
func FixedArray(item *Schema, n int) *Schema {
	return &Schema{Type: "array", Items: item, MinItems: &n, MaxItems: &n}
}

// ClosedObject describes a map with exactly the given fields, all required.
func ClosedObject(fields []string, item func() *Schema) *Schema {
	props := make(map[string]*Schema, len(fields))
	for _, f := range fields {
		props[f] = item()
	}
	return &Schema{
		Type:                 "object",
		Properties:           props,
		Required:             append([]string(nil), fields...),
		AdditionalProperties: false,
	}
}
