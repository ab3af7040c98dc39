package oas2ts

import (
	"errors"

	"github.com/krateoplatformops/oas2ts/internal/tools/tsexpr"
	"github.com/pb33f/libopenapi/orderedmap"
)

type entry struct {
	name   string
	schema *Schema
}

func named(name string, s *Schema) entry {
	return entry{name: name, schema: s}
}

func schemaMap(entries ...entry) *orderedmap.Map[string, *Schema] {
	m := NewSchemaMap()
	for _, e := range entries {
		m.Set(e.name, e.schema)
	}
	return m
}

func typed(typ string) *Schema {
	return &Schema{Type: typ}
}

func refTo(ref string) *Schema {
	return &Schema{Ref: ref}
}

func object(required []string, props ...entry) *Schema {
	return &Schema{Type: "object", Required: required, Properties: schemaMap(props...)}
}

func responses(kv ...any) *orderedmap.Map[string, *Response] {
	m := orderedmap.New[string, *Response]()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1].(*Response))
	}
	return m
}

func operations(kv ...any) *orderedmap.Map[string, *Operation] {
	m := orderedmap.New[string, *Operation]()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1].(*Operation))
	}
	return m
}

func pathItems(kv ...any) *orderedmap.Map[string, *PathItem] {
	m := orderedmap.New[string, *PathItem]()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1].(*PathItem))
	}
	return m
}

func warningCodes(warnings []error) []WarningCode {
	var codes []WarningCode
	for _, w := range warnings {
		var cw CompileWarning
		if errors.As(w, &cw) {
			codes = append(codes, cw.Code)
		}
	}
	return codes
}

// render transforms s with the given references declared as valid targets.
func render(s *Schema, dialect Dialect, declared ...string) (string, []WarningCode) {
	tr := newTransformer(dialect)
	for _, ref := range declared {
		lookup := EncodeRef(ref)
		tr.declare(lookup.Root, lookup.Path...)
	}
	out := tsexpr.Print(tr.transform(s, "test"))
	return out, warningCodes(tr.warnings)
}
