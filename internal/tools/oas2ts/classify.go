package oas2ts

// Kind is the shape category a Schema is compiled as.
type Kind int

const (
	KindUnclassified Kind = iota
	KindAlternatives
	KindReference
	KindEnum
	KindBoolean
	KindString
	KindNumber
	KindAnyOf
	KindOneOf
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAlternatives:
		return "alternatives"
	case KindReference:
		return "reference"
	case KindEnum:
		return "enum"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindAnyOf:
		return "any-of"
	case KindOneOf:
		return "one-of"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unclassified"
}

var stringTypes = map[string]bool{
	"binary":   true,
	"byte":     true,
	"date":     true,
	"dateTime": true,
	"password": true,
	"string":   true,
}

var numberTypes = map[string]bool{
	"double":  true,
	"float":   true,
	"integer": true,
	"number":  true,
}

// Classify returns the category of s. Several shapes can be present on the
// same node, so the checks run in a fixed order and the first hit wins:
// alternatives, reference, enum, boolean, string, number, any-of (v3),
// one-of (v3), array, object. A nil schema is unclassified.
func Classify(s *Schema, dialect Dialect) Kind {
	switch {
	case s == nil:
		return KindUnclassified
	case s.Alternatives != nil:
		return KindAlternatives
	case s.Ref != "":
		return KindReference
	case s.Enum != nil:
		return KindEnum
	case s.Type == "boolean":
		return KindBoolean
	case stringTypes[s.Type]:
		return KindString
	case numberTypes[s.Type]:
		return KindNumber
	case dialect == DialectV3 && s.AnyOf != nil:
		return KindAnyOf
	case dialect == DialectV3 && s.OneOf != nil:
		return KindOneOf
	case s.Type == "array" || s.Items != nil:
		return KindArray
	}
	return KindObject
}

// isPrimitive reports whether k renders as a TypeScript keyword.
func (k Kind) isPrimitive() bool {
	return k == KindBoolean || k == KindString || k == KindNumber
}
