package oas2ts

import (
	"github.com/pb33f/libopenapi/orderedmap"
)

// Property is what a PropertyMapper sees of, and may change about, one
// property of an object schema.
type Property struct {
	InterfaceType string
	Optional      bool
	Description   string
}

// PropertyMapper rewrites a property before compilation. node is the
// property's own schema. It must be pure: it is called once per property
// per compilation, in document order.
type PropertyMapper func(node *Schema, prop Property) Property

// applyPropertyMapper returns a deep copy of defs in which mapper has been
// applied to every property of every object schema, at any depth. The
// input is never modified. Reference properties are not offered to mapper.
func applyPropertyMapper(defs *orderedmap.Map[string, *Schema], mapper PropertyMapper) *orderedmap.Map[string, *Schema] {
	if defs == nil {
		return nil
	}
	mapped := copySchemaMap(defs)
	if mapper == nil {
		return mapped
	}
	for pair := mapped.First(); pair != nil; pair = pair.Next() {
		mapSchema(pair.Value(), mapper)
	}
	return mapped
}

func mapSchema(s *Schema, mapper PropertyMapper) {
	if s == nil {
		return
	}

	if s.Properties != nil {
		for pair := s.Properties.First(); pair != nil; pair = pair.Next() {
			name, prop := pair.Key(), pair.Value()
			if prop == nil {
				continue
			}
			if prop.Ref == "" {
				mapProperty(s, name, prop, mapper)
			}
			mapSchema(prop, mapper)
		}
	}

	mapSchema(s.Items, mapper)
	for _, list := range [][]*Schema{s.AllOf, s.OneOf, s.AnyOf, s.Alternatives} {
		for _, child := range list {
			mapSchema(child, mapper)
		}
	}
	if s.AdditionalProperties != nil {
		mapSchema(s.AdditionalProperties.Schema, mapper)
	}
}

func mapProperty(parent *Schema, name string, prop *Schema, mapper PropertyMapper) {
	out := mapper(prop, Property{
		InterfaceType: prop.Type,
		Optional:      !parent.isRequired(name),
		Description:   prop.Description,
	})

	switch {
	case out.Optional && parent.Required != nil:
		kept := parent.Required[:0:0]
		for _, r := range parent.Required {
			if r != name {
				kept = append(kept, r)
			}
		}
		parent.Required = kept
	case !out.Optional && !parent.isRequired(name):
		parent.Required = append(parent.Required, name)
	}

	prop.Type = out.InterfaceType
	prop.Description = out.Description
}
