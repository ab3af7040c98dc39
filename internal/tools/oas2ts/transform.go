package oas2ts

import (
	"fmt"
	"strings"

	"github.com/krateoplatformops/oas2ts/internal/tools/tsexpr"
	"github.com/pb33f/libopenapi/orderedmap"
)

// transformer turns schemas into type expressions for one compilation.
// It is not safe for concurrent use; Compile creates a fresh one per call.
type transformer struct {
	dialect  Dialect
	targets  map[string]bool
	warnings []error
}

func newTransformer(dialect Dialect) *transformer {
	return &transformer{
		dialect: dialect,
		targets: map[string]bool{},
	}
}

// declare registers root[path...] as a valid reference target.
func (t *transformer) declare(root string, path ...string) {
	t.targets[lookupKey(root, path)] = true
}

func lookupKey(root string, path []string) string {
	return root + "\x00" + strings.Join(path, "\x00")
}

func (t *transformer) warn(at string, code WarningCode, format string, args ...any) {
	t.warnings = append(t.warnings, CompileWarning{
		Path:    at,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// transform compiles s, found at location at, into a type expression.
func (t *transformer) transform(s *Schema, at string) tsexpr.Expr {
	e := t.transformShape(s, at)
	if t.dialect == DialectV3 && s != nil && s.Nullable {
		return tsexpr.Nullable(e)
	}
	return e
}

func (t *transformer) transformShape(s *Schema, at string) tsexpr.Expr {
	switch Classify(s, t.dialect) {
	case KindReference:
		return t.reference(s.Ref, at)
	case KindBoolean:
		return tsexpr.Boolean
	case KindString:
		return tsexpr.String
	case KindNumber:
		return tsexpr.Number
	case KindEnum:
		union := make(tsexpr.Union, 0, len(s.Enum))
		for _, v := range s.Enum {
			union = append(union, tsexpr.Literal(v))
		}
		if len(union) == 0 {
			t.warn(at, CodeEmptyComposition, "enum has no values")
		}
		return union
	case KindAlternatives:
		return t.union(s.Alternatives, at+".x-alternatives")
	case KindOneOf:
		return t.union(s.OneOf, at+".oneOf")
	case KindAnyOf:
		if len(s.AnyOf) == 0 {
			t.warn(at+".anyOf", CodeEmptyComposition, "anyOf has no members")
		}
		parts := make(tsexpr.Intersection, 0, len(s.AnyOf))
		for i, sub := range s.AnyOf {
			parts = append(parts, tsexpr.Partial(t.transform(sub, fmt.Sprintf("%s.anyOf[%d]", at, i))))
		}
		return parts
	case KindArray:
		if s.Items == nil {
			return tsexpr.Array{Elem: tsexpr.Any}
		}
		return tsexpr.Array{Elem: t.transform(s.Items, at+".items")}
	case KindObject:
		return t.object(s, at)
	}
	return tsexpr.Any
}

func (t *transformer) reference(ref, at string) tsexpr.Expr {
	lookup := EncodeRef(ref)
	switch {
	case !isLocalRef(ref):
		t.warn(at, CodeMalformedReference, "reference %q does not start with %q", ref, refPrefix)
	case !t.targets[lookupKey(lookup.Root, lookup.Path)]:
		t.warn(at, CodeUnresolvedReference, "reference %q does not name a declared entity", ref)
	}
	return lookup
}

func (t *transformer) union(members []*Schema, at string) tsexpr.Expr {
	if len(members) == 0 {
		t.warn(at, CodeEmptyComposition, "composition has no members")
	}
	union := make(tsexpr.Union, 0, len(members))
	for i, sub := range members {
		union = append(union, t.transform(sub, fmt.Sprintf("%s[%d]", at, i)))
	}
	return union
}

// object compiles an object schema as the intersection of its allOf
// members followed by its own members. A schema with nothing to say about
// its shape becomes an open record.
func (t *transformer) object(s *Schema, at string) tsexpr.Expr {
	hasProperties := s.Properties != nil && s.Properties.First() != nil
	hasAdditional := s.AdditionalProperties != nil &&
		(s.AdditionalProperties.Allowed || s.AdditionalProperties.Schema != nil)

	if !hasProperties && s.AllOf == nil && !hasAdditional {
		return tsexpr.OpenRecord()
	}

	parts := make(tsexpr.Intersection, 0, len(s.AllOf)+1)
	for i, sub := range s.AllOf {
		parts = append(parts, t.transform(sub, fmt.Sprintf("%s.allOf[%d]", at, i)))
	}

	members := t.members(s.Properties, s.Required, at+".properties")
	if hasAdditional {
		members = append(members, tsexpr.Member{Index: true, Type: additionalType(s.AdditionalProperties, t.dialect)})
	}
	if len(members) > 0 {
		parts = append(parts, tsexpr.Object{Members: members})
	}

	if len(parts) == 0 {
		t.warn(at+".allOf", CodeEmptyComposition, "allOf has no members and the object declares no properties")
	}
	return parts
}

// members renders properties in document order. A property is optional
// unless its name is in required.
func (t *transformer) members(props *orderedmap.Map[string, *Schema], required []string, at string) []tsexpr.Member {
	if props == nil {
		return nil
	}

	req := make(map[string]bool, len(required))
	for _, r := range required {
		req[r] = true
	}

	var members []tsexpr.Member
	for pair := props.First(); pair != nil; pair = pair.Next() {
		name, prop := pair.Key(), pair.Value()
		m := tsexpr.Member{
			Key:      name,
			Optional: !req[name],
			Type:     t.transform(prop, at+"."+name),
		}
		if prop != nil {
			m.Doc = prop.Description
		}
		members = append(members, m)
	}
	return members
}

// additionalType types the index signature of additionalProperties by the
// category of its schema. Primitives and objects keep their keyword, other
// categories and the boolean form are any.
func additionalType(ap *AdditionalProperties, dialect Dialect) tsexpr.Expr {
	if ap.Schema == nil {
		return tsexpr.Any
	}
	if k := Classify(ap.Schema, dialect); k.isPrimitive() || k == KindObject {
		return tsexpr.Keyword(k.String())
	}
	return tsexpr.Any
}
