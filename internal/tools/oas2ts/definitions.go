package oas2ts

import (
	"github.com/krateoplatformops/oas2ts/internal/tools/tsexpr"
	"github.com/pb33f/libopenapi/orderedmap"
)

// entityMembers emits one member per named entity, in table order. Named
// entities are declarations, so none of them is optional.
func (t *transformer) entityMembers(defs *orderedmap.Map[string, *Schema], at string) []tsexpr.Member {
	var members []tsexpr.Member
	for pair := defs.First(); pair != nil; pair = pair.Next() {
		name, s := pair.Key(), pair.Value()
		m := tsexpr.Member{
			Key:  name,
			Type: t.transform(s, at+"."+name),
		}
		if s != nil {
			m.Doc = s.Description
		}
		members = append(members, m)
	}
	return members
}

// responseMembers emits one member per v3 named response, typed by its
// schema. A response without one is an open record.
func (t *transformer) responseMembers(responses *orderedmap.Map[string, *Response], at string) []tsexpr.Member {
	var members []tsexpr.Member
	for pair := responses.First(); pair != nil; pair = pair.Next() {
		name, r := pair.Key(), pair.Value()
		m := tsexpr.Member{Key: name, Type: tsexpr.OpenRecord()}
		if r != nil {
			m.Doc = r.Description
			switch {
			case r.Ref != "":
				m.Type = t.reference(r.Ref, at+"."+name)
			case r.Schema != nil:
				m.Type = t.transform(r.Schema, at+"."+name)
			}
		}
		members = append(members, m)
	}
	return members
}

// declareEntities registers root[prefix...][name] as a reference target for
// every name of defs.
func (t *transformer) declareEntities(defs *orderedmap.Map[string, *Schema], root string, prefix ...string) {
	for pair := defs.First(); pair != nil; pair = pair.Next() {
		path := append(append([]string{}, prefix...), pair.Key())
		t.declare(root, path...)
	}
}

func (t *transformer) declareResponses(responses *orderedmap.Map[string, *Response]) {
	for pair := responses.First(); pair != nil; pair = pair.Next() {
		t.declare("components", "responses", pair.Key())
	}
}

// definitionsV2 builds `export interface definitions`.
func (t *transformer) definitionsV2(doc *Document, defs *orderedmap.Map[string, *Schema]) tsexpr.Interface {
	t.declareEntities(defs, "definitions")

	body := tsexpr.Object{Members: t.entityMembers(defs, "definitions")}
	if doc.Paths != nil {
		body.Members = append(body.Members, t.endpoints(doc.Paths, defs)...)
	}
	return tsexpr.Interface{Name: "definitions", Body: body}
}

// componentsV3 builds `export interface components` with a schemas member
// and, when the document declares any, a responses member.
func (t *transformer) componentsV3(doc *Document, defs *orderedmap.Map[string, *Schema]) tsexpr.Interface {
	t.declareEntities(defs, "components", "schemas")
	if doc.Responses != nil {
		t.declareResponses(doc.Responses)
	}

	body := tsexpr.Object{Members: []tsexpr.Member{{
		Key:   "schemas",
		Style: tsexpr.Bare,
		Type:  tsexpr.Object{Members: t.entityMembers(defs, "components.schemas"), Multiline: true},
	}}}
	if doc.Responses != nil {
		body.Members = append(body.Members, tsexpr.Member{
			Key:   "responses",
			Style: tsexpr.Bare,
			Type:  tsexpr.Object{Members: t.responseMembers(doc.Responses, "components.responses"), Multiline: true},
		})
	}
	return tsexpr.Interface{Name: "components", Body: body}
}
