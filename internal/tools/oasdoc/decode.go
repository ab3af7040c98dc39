package oasdoc

import (
	"context"
	"strings"

	"github.com/krateoplatformops/oas2ts/internal/tools/oas2ts"
	"github.com/krateoplatformops/oas2ts/internal/tools/safety"
	"github.com/pb33f/libopenapi/orderedmap"
	"gopkg.in/yaml.v3"
)

// preferredMediaType is the content entry a v3 response is typed by when
// it has several.
const preferredMediaType = "application/json"

type decoder struct {
	ctx   context.Context
	guard *safety.RecursionGuard
}

func (d *decoder) schema(n *yaml.Node, depth int) (*oas2ts.Schema, error) {
	if err := d.guard.Check(d.ctx, depth); err != nil {
		return nil, err
	}
	n = resolve(n)
	if !isMapping(n) {
		return nil, nil
	}

	s := &oas2ts.Schema{}
	err := pairs(n, func(key string, v *yaml.Node) (err error) {
		switch key {
		case "$ref":
			s.Ref = scalar(v)
		case "type":
			s.Type, s.Nullable = schemaType(v, s.Nullable)
		case "format":
			s.Format = scalar(v)
		case "description":
			s.Description = scalar(v)
		case "nullable":
			s.Nullable = s.Nullable || boolean(v)
		case "enum":
			s.Enum = stringList(v)
		case "required":
			s.Required = stringList(v)
		case "items":
			if isSequence(v) {
				if len(v.Content) == 0 {
					return nil
				}
				v = v.Content[0]
			}
			s.Items, err = d.schema(v, depth+1)
		case "properties":
			s.Properties, err = d.schemaMap(v, depth+1)
		case "additionalProperties":
			s.AdditionalProperties, err = d.additional(v, depth+1)
		case "allOf":
			s.AllOf, err = d.schemaList(v, depth+1)
		case "oneOf":
			s.OneOf, err = d.schemaList(v, depth+1)
		case "anyOf":
			s.AnyOf, err = d.schemaList(v, depth+1)
		case "x-alternatives":
			s.Alternatives, err = d.schemaList(v, depth+1)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// schemaType reads `type`, which is a string, or a list in newer drafts. A
// "null" entry in the list marks the schema nullable.
func schemaType(n *yaml.Node, nullable bool) (string, bool) {
	if !isSequence(n) {
		return scalar(n), nullable
	}
	typ := ""
	for _, t := range stringList(n) {
		switch {
		case t == "null":
			nullable = true
		case typ == "":
			typ = t
		}
	}
	return typ, nullable
}

func (d *decoder) additional(n *yaml.Node, depth int) (*oas2ts.AdditionalProperties, error) {
	if !isMapping(n) {
		return &oas2ts.AdditionalProperties{Allowed: boolean(n)}, nil
	}
	s, err := d.schema(n, depth)
	if err != nil {
		return nil, err
	}
	return &oas2ts.AdditionalProperties{Allowed: true, Schema: s}, nil
}

// schemaList decodes a sequence of schemas. It is nil unless n is a
// sequence; an empty sequence is non-nil and still takes part in
// classification.
func (d *decoder) schemaList(n *yaml.Node, depth int) ([]*oas2ts.Schema, error) {
	n = resolve(n)
	if !isSequence(n) {
		return nil, nil
	}
	out := make([]*oas2ts.Schema, 0, len(n.Content))
	for _, item := range n.Content {
		s, err := d.schema(item, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) schemaMap(n *yaml.Node, depth int) (*orderedmap.Map[string, *oas2ts.Schema], error) {
	out := oas2ts.NewSchemaMap()
	err := pairs(n, func(name string, v *yaml.Node) error {
		s, err := d.schema(v, depth)
		if err != nil {
			return err
		}
		out.Set(name, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// paths decodes a v2 paths object.
func (d *decoder) paths(n *yaml.Node) (*orderedmap.Map[string, *oas2ts.PathItem], error) {
	out := orderedmap.New[string, *oas2ts.PathItem]()
	err := pairs(n, func(path string, v *yaml.Node) error {
		if !strings.HasPrefix(path, "/") {
			return nil
		}
		item, err := d.pathItem(v)
		if err != nil {
			return err
		}
		out.Set(path, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d *decoder) pathItem(n *yaml.Node) (*oas2ts.PathItem, error) {
	item := &oas2ts.PathItem{Operations: orderedmap.New[string, *oas2ts.Operation]()}
	err := pairs(n, func(key string, v *yaml.Node) (err error) {
		switch {
		case key == "parameters":
			item.Parameters, err = d.parameters(v)
		case oas2ts.IsHTTPMethod(key):
			var op *oas2ts.Operation
			if op, err = d.operation(v); err == nil {
				item.Operations.Set(key, op)
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (d *decoder) operation(n *yaml.Node) (*oas2ts.Operation, error) {
	op := &oas2ts.Operation{
		OperationID: scalar(lookup(n, "operationId")),
		Summary:     scalar(lookup(n, "summary")),
		Description: scalar(lookup(n, "description")),
	}

	var err error
	if op.Parameters, err = d.parameters(lookup(n, "parameters")); err != nil {
		return nil, err
	}
	if r := lookup(n, "responses"); r != nil {
		if op.Responses, err = d.responses(r); err != nil {
			return nil, err
		}
	}
	return op, nil
}

func (d *decoder) parameters(n *yaml.Node) ([]*oas2ts.Parameter, error) {
	if !isSequence(n) {
		return nil, nil
	}
	var out []*oas2ts.Parameter
	for _, item := range n.Content {
		p, err := d.parameter(resolve(item))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (d *decoder) parameter(n *yaml.Node) (*oas2ts.Parameter, error) {
	if !isMapping(n) {
		return nil, nil
	}
	p := &oas2ts.Parameter{
		Ref:         scalar(lookup(n, "$ref")),
		Name:        scalar(lookup(n, "name")),
		In:          oas2ts.ParameterLocation(scalar(lookup(n, "in"))),
		Required:    boolean(lookup(n, "required")),
		Description: scalar(lookup(n, "description")),
	}
	if p.Ref != "" {
		return p, nil
	}

	var err error
	if p.In == oas2ts.LocationBody {
		p.Schema, err = d.schema(lookup(n, "schema"), 0)
		return p, err
	}

	// Non-body parameters describe their value inline. The description
	// already documents the member, so it is not repeated on the type.
	if p.Inline, err = d.schema(n, 0); err == nil && p.Inline != nil {
		p.Inline.Description = ""
	}
	return p, err
}

// responses decodes a responses object or a v3 components.responses map.
func (d *decoder) responses(n *yaml.Node) (*orderedmap.Map[string, *oas2ts.Response], error) {
	out := orderedmap.New[string, *oas2ts.Response]()
	err := pairs(n, func(key string, v *yaml.Node) error {
		r, err := d.response(v)
		if err != nil {
			return err
		}
		out.Set(key, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// response reads a v2 response (schema) or a v3 response (content by media
// type, preferring JSON).
func (d *decoder) response(n *yaml.Node) (*oas2ts.Response, error) {
	if !isMapping(n) {
		return nil, nil
	}
	r := &oas2ts.Response{
		Ref:         scalar(lookup(n, "$ref")),
		Description: scalar(lookup(n, "description")),
	}

	schemaNode := lookup(n, "schema")
	if content := lookup(n, "content"); isMapping(content) {
		media := lookup(content, preferredMediaType)
		if media == nil && len(content.Content) > 1 {
			media = resolve(content.Content[1])
		}
		schemaNode = lookup(media, "schema")
	}
	if schemaNode == nil {
		return r, nil
	}

	var err error
	r.Schema, err = d.schema(schemaNode, 0)
	return r, err
}
