package oas2ts

import (
	"fmt"
	"strings"

	"github.com/krateoplatformops/oas2ts/internal/tools/text"
	"github.com/krateoplatformops/oas2ts/internal/tools/tsexpr"
	"github.com/pb33f/libopenapi/orderedmap"
)

// pathsDefinitionsKey is the member holding the path-indexed view of the
// endpoint types.
const pathsDefinitionsKey = "pathsDefinitions"

var httpMethods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
}

// IsHTTPMethod reports whether key of a path item names an operation.
func IsHTTPMethod(key string) bool {
	return httpMethods[key]
}

var locationLabels = map[ParameterLocation]string{
	LocationBody:     "Body",
	LocationQuery:    "Query",
	LocationHeader:   "Headers",
	LocationFormData: "FormData",
	LocationPath:     "PathParams",
}

// nameRegistry hands out unique names, suffixing 2, 3, ... on clashes.
type nameRegistry struct {
	taken map[string]bool
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{taken: map[string]bool{}}
}

func (r *nameRegistry) claim(name string) (string, bool) {
	if !r.taken[name] {
		r.taken[name] = true
		return name, false
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", name, i)
		if !r.taken[candidate] {
			r.taken[candidate] = true
			return candidate, true
		}
	}
}

func (t *transformer) claim(r *nameRegistry, name, at string) string {
	got, renamed := r.claim(name)
	if renamed {
		t.warn(at, CodeRenamedMember, "name %q is already taken, emitted as %q", name, got)
	}
	return got
}

// paramGroup is the parameters of one location. Body is a singleton, the
// other locations are keyed by parameter name.
type paramGroup struct {
	in     ParameterLocation
	body   *Parameter
	params *orderedmap.Map[string, *Parameter]
}

// endpoints synthesizes the request and response members of every
// operation, followed by the pathsDefinitions member that exposes the same
// types by literal path and method.
func (t *transformer) endpoints(paths *orderedmap.Map[string, *PathItem], defs *orderedmap.Map[string, *Schema]) []tsexpr.Member {
	flat := newNameRegistry()
	for pair := defs.First(); pair != nil; pair = pair.Next() {
		flat.claim(pair.Key())
	}
	byPathKey := t.claim(flat, pathsDefinitionsKey, "paths")
	prefixes := newNameRegistry()

	var members, byPath []tsexpr.Member
	for pair := paths.First(); pair != nil; pair = pair.Next() {
		path, item := pair.Key(), pair.Value()
		at := "paths." + path

		var methods []tsexpr.Member
		if item != nil && item.Operations != nil {
			for op := item.Operations.First(); op != nil; op = op.Next() {
				method, operation := op.Key(), op.Value()
				if !IsHTTPMethod(method) || operation == nil {
					continue
				}
				opAt := at + "." + method
				prefix := t.claim(prefixes, method+text.PathToIdentifier(path), opAt)

				named, indexed := t.operation(prefix, at, method, item.Parameters, operation, flat)
				members = append(members, named...)
				methods = append(methods, tsexpr.Member{
					Key:   strings.ToUpper(method),
					Style: tsexpr.Bare,
					Type:  tsexpr.Object{Members: indexed, Multiline: true},
				})
			}
		}

		byPath = append(byPath, tsexpr.Member{
			Key:   path,
			Style: tsexpr.SingleQuoted,
			Type:  tsexpr.Object{Members: methods, Multiline: true},
		})
	}

	return append(members, tsexpr.Member{
		Key:   byPathKey,
		Style: tsexpr.Bare,
		Type:  tsexpr.Object{Members: byPath, Multiline: true},
	})
}

// operation returns the flat members of one operation and their
// path-indexed counterparts. Both share the same type expressions.
func (t *transformer) operation(prefix, pathAt, method string, shared []*Parameter, op *Operation, flat *nameRegistry) (named, indexed []tsexpr.Member) {
	at := pathAt + "." + method
	for _, g := range t.groupParameters(shared, op.Parameters, pathAt, at) {
		label := locationLabels[g.in]

		var typ tsexpr.Expr
		if g.in == LocationBody {
			typ = t.transform(g.body.Schema, at+".parameters.body")
		} else {
			typ = tsexpr.Object{Members: t.parameterMembers(g.params, at+".parameters."+string(g.in))}
		}

		named = append(named, memberOf(t.claim(flat, prefix+"Request"+label, at), "", typ))
		indexed = append(indexed, memberOf("request"+label, "", typ))
	}

	if op.Responses == nil {
		return named, indexed
	}

	first := true
	for pair := op.Responses.First(); pair != nil; pair = pair.Next() {
		status, r := pair.Key(), pair.Value()
		rat := at + ".responses." + status
		switch {
		case r == nil:
			continue
		case r.Ref != "":
			t.warn(rat, CodeSkippedResponse, "response is a reference to %q", r.Ref)
			continue
		case r.Schema == nil:
			t.warn(rat, CodeSkippedResponse, "response has no schema")
			continue
		}

		doc := responseComment(op, status, r)
		typ := t.transform(r.Schema, rat+".schema")
		status = text.CapitaliseFirstLetter(status)

		named = append(named, memberOf(t.claim(flat, prefix+status+"Response", rat), doc, typ))

		key := "response"
		if !first {
			key += status
		}
		first = false
		indexed = append(indexed, memberOf(key, doc, typ))
	}
	return named, indexed
}

// groupParameters merges path-level parameters with the operation's own and
// groups them by location, in order of first appearance. An operation
// parameter replaces a path-level one with the same name and location.
func (t *transformer) groupParameters(shared, own []*Parameter, pathAt, opAt string) []*paramGroup {
	var groups []*paramGroup
	byLocation := map[ParameterLocation]*paramGroup{}

	add := func(p *Parameter, pat string) {
		switch {
		case p == nil:
			return
		case p.Ref != "":
			t.warn(pat, CodeSkippedParameter, "parameter is a reference to %q", p.Ref)
			return
		case locationLabels[p.In] == "":
			t.warn(pat, CodeSkippedParameter, "parameter %q has unknown location %q", p.Name, p.In)
			return
		}

		g, ok := byLocation[p.In]
		if !ok {
			g = &paramGroup{in: p.In, params: orderedmap.New[string, *Parameter]()}
			byLocation[p.In] = g
			groups = append(groups, g)
		}
		if p.In == LocationBody {
			g.body = p
			return
		}
		g.params.Set(p.Name, p)
	}

	for i, p := range shared {
		add(p, fmt.Sprintf("%s.parameters[%d]", pathAt, i))
	}
	for i, p := range own {
		add(p, fmt.Sprintf("%s.parameters[%d]", opAt, i))
	}
	return groups
}

func (t *transformer) parameterMembers(params *orderedmap.Map[string, *Parameter], at string) []tsexpr.Member {
	var members []tsexpr.Member
	for pair := params.First(); pair != nil; pair = pair.Next() {
		p := pair.Value()
		members = append(members, tsexpr.Member{
			Doc:      p.Description,
			Key:      p.Name,
			Optional: !p.Required,
			Type:     t.transform(p.Inline, at+"."+p.Name),
		})
	}
	return members
}

// responseComment joins the operation description and summary with the
// response status and description.
func responseComment(op *Operation, status string, r *Response) string {
	var lines []string
	if op.Description != "" {
		lines = append(lines, "@description "+op.Description)
	}
	if op.Summary != "" {
		parts := []string{"@summary", op.Summary, status}
		if r.Description != "" {
			parts = append(parts, r.Description)
		}
		lines = append(lines, strings.Join(append(parts, "response"), " "))
	}
	return strings.Join(lines, "\n")
}

// memberOf writes key bare when it is a valid identifier.
func memberOf(key, doc string, typ tsexpr.Expr) tsexpr.Member {
	style := tsexpr.DoubleQuoted
	if text.IsIdentifier(key) {
		style = tsexpr.Bare
	}
	return tsexpr.Member{Doc: doc, Key: key, Style: style, Type: typ}
}
