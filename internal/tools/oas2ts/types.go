package oas2ts

import (
	"github.com/pb33f/libopenapi/orderedmap"
)

// Dialect identifies which OpenAPI document shape is being compiled.
type Dialect int

const (
	// DialectUnknown is the zero value; compiling it is a precondition violation.
	DialectUnknown Dialect = iota
	// DialectV2 is Swagger/OpenAPI 2.x.
	DialectV2
	// DialectV3 is OpenAPI 3.x.
	DialectV3
)

func (d Dialect) String() string {
	switch d {
	case DialectV2:
		return "v2"
	case DialectV3:
		return "v3"
	}
	return "unknown"
}

// Config holds the options consumed by the compiler core.
type Config struct {
	// PropertyMapper, when set, is folded over every object property before
	// any transformation happens.
	PropertyMapper PropertyMapper
}

// --- Document Model ---

// Schema is a library-agnostic Schema Object. Every shape the compiler
// recognizes is a field here; Classify decides which one wins.
//
// List fields distinguish "absent" (nil) from "present but empty"
// (non-nil, zero length), because presence alone drives classification.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Description string
	Enum        []string

	Items                *Schema
	Properties           *orderedmap.Map[string, *Schema]
	Required             []string
	AdditionalProperties *AdditionalProperties

	AllOf        []*Schema
	OneOf        []*Schema
	AnyOf        []*Schema
	Alternatives []*Schema

	Nullable bool
}

// AdditionalProperties covers both forms of additionalProperties: a bare
// boolean flag (Schema nil) or a schema.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema
}

// Document is a decoded API description ready for compilation.
type Document struct {
	Dialect Dialect

	// Definitions is the Named Entity Table: v2 `definitions` or v3
	// `components.schemas`. Nil means the container is missing.
	Definitions *orderedmap.Map[string, *Schema]

	// Responses is v3 `components.responses`; nil when absent.
	Responses *orderedmap.Map[string, *Response]

	// Paths is the v2 endpoint catalogue; nil when absent.
	Paths *orderedmap.Map[string, *PathItem]
}

// PathItem holds the operations of one path, in document order.
type PathItem struct {
	Parameters []*Parameter
	Operations *orderedmap.Map[string, *Operation]
}

// Operation is a single method under a path.
type Operation struct {
	OperationID string
	Summary     string
	Description string
	Parameters  []*Parameter
	Responses   *orderedmap.Map[string, *Response]
}

// ParameterLocation is the `in` field of a v2 parameter.
type ParameterLocation string

const (
	LocationBody     ParameterLocation = "body"
	LocationQuery    ParameterLocation = "query"
	LocationHeader   ParameterLocation = "header"
	LocationFormData ParameterLocation = "formData"
	LocationPath     ParameterLocation = "path"
)

// Parameter is a v2 parameter. Body parameters carry Schema; every other
// location is described by the parameter object itself, decoded as Inline.
type Parameter struct {
	Ref         string
	Name        string
	In          ParameterLocation
	Required    bool
	Description string
	Schema      *Schema
	Inline      *Schema
}

// Response is a response entry, or a named v3 response.
type Response struct {
	Ref         string
	Description string
	Schema      *Schema
}

// Result holds the output of a compilation.
type Result struct {
	// Text is the unformatted declaration block, header included.
	Text string
	// Warnings lists every anomaly that was absorbed instead of failing.
	Warnings []error
}

// NewSchemaMap returns an empty ordered schema map.
func NewSchemaMap() *orderedmap.Map[string, *Schema] {
	return orderedmap.New[string, *Schema]()
}

func (s *Schema) deepCopy() *Schema {
	if s == nil {
		return nil
	}

	c := &Schema{
		Ref:         s.Ref,
		Type:        s.Type,
		Format:      s.Format,
		Description: s.Description,
		Nullable:    s.Nullable,
		Items:       s.Items.deepCopy(),
	}
	if s.Enum != nil {
		c.Enum = append([]string{}, s.Enum...)
	}
	if s.Required != nil {
		c.Required = append([]string{}, s.Required...)
	}
	if s.Properties != nil {
		c.Properties = copySchemaMap(s.Properties)
	}
	if s.AdditionalProperties != nil {
		c.AdditionalProperties = &AdditionalProperties{
			Allowed: s.AdditionalProperties.Allowed,
			Schema:  s.AdditionalProperties.Schema.deepCopy(),
		}
	}
	c.AllOf = copySchemas(s.AllOf)
	c.OneOf = copySchemas(s.OneOf)
	c.AnyOf = copySchemas(s.AnyOf)
	c.Alternatives = copySchemas(s.Alternatives)
	return c
}

func copySchemas(in []*Schema) []*Schema {
	if in == nil {
		return nil
	}
	out := make([]*Schema, 0, len(in))
	for _, s := range in {
		out = append(out, s.deepCopy())
	}
	return out
}

func copySchemaMap(in *orderedmap.Map[string, *Schema]) *orderedmap.Map[string, *Schema] {
	out := NewSchemaMap()
	for pair := in.First(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key(), pair.Value().deepCopy())
	}
	return out
}

func (s *Schema) isRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}
