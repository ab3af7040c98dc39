package tsexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	testCases := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name:     "keyword",
			expr:     String,
			expected: "string",
		},
		{
			name:     "nil prints any",
			expr:     nil,
			expected: "any",
		},
		{
			name:     "literal escapes quotes",
			expr:     Literal(`it's`),
			expected: `'it\'s'`,
		},
		{
			name:     "lookup chains quoted segments",
			expr:     Lookup{Root: "definitions", Path: []string{"Pet"}},
			expected: `definitions["Pet"]`,
		},
		{
			name:     "union of literals",
			expr:     Union{Literal("A"), Literal("B")},
			expected: `'A' | 'B'`,
		},
		{
			name:     "single member union collapses",
			expr:     Union{Number},
			expected: "number",
		},
		{
			name:     "empty union is never",
			expr:     Union{},
			expected: "never",
		},
		{
			name:     "empty intersection is the empty object",
			expr:     Intersection{},
			expected: "{}",
		},
		{
			name:     "array of keyword",
			expr:     Array{Elem: String},
			expected: "string[]",
		},
		{
			name:     "array of union is parenthesized",
			expr:     Array{Elem: Union{Literal("A"), Literal("B")}},
			expected: `('A' | 'B')[]`,
		},
		{
			name:     "array of single member union is not parenthesized",
			expr:     Array{Elem: Union{Boolean}},
			expected: "boolean[]",
		},
		{
			name:     "union inside intersection is parenthesized",
			expr:     Intersection{Union{String, Number}, Lookup{Root: "a", Path: []string{"b"}}},
			expected: `(string | number) & a["b"]`,
		},
		{
			name:     "intersection inside union is parenthesized",
			expr:     Union{Intersection{String, Number}, Boolean},
			expected: `(string & number) | boolean`,
		},
		{
			name:     "nested unions flatten",
			expr:     Nullable(Union{String, Number}),
			expected: "string | number | null",
		},
		{
			name:     "partial generic",
			expr:     Intersection{Partial(Lookup{Root: "components", Path: []string{"schemas", "A"}}), Partial(Lookup{Root: "components", Path: []string{"schemas", "B"}})},
			expected: `Partial<components["schemas"]["A"]> & Partial<components["schemas"]["B"]>`,
		},
		{
			name: "compact object",
			expr: Object{Members: []Member{
				{Key: "id", Type: Number},
				{Key: "name", Optional: true, Type: String},
			}},
			expected: `{ "id": number; "name"?: string; }`,
		},
		{
			name:     "open record",
			expr:     OpenRecord(),
			expected: `{ [key: string]: any; }`,
		},
		{
			name:     "empty object",
			expr:     Object{},
			expected: "{}",
		},
		{
			name: "object with docs is multiline",
			expr: Object{Members: []Member{
				{Doc: "identifier", Key: "id", Type: Number},
			}},
			expected: "{\n/** identifier */\n\"id\": number;\n}",
		},
		{
			name: "key styles",
			expr: Object{Members: []Member{
				{Key: "/pets", Style: SingleQuoted, Type: Any},
				{Key: "GET", Style: Bare, Type: Any},
			}},
			expected: `{ '/pets': any; GET: any; }`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Print(tc.expr))
		})
	}
}

func TestComment(t *testing.T) {
	t.Run("should keep single line text on one line", func(t *testing.T) {
		assert.Equal(t, "/** A pet */\n", Comment("  A pet \n"))
	})

	t.Run("should render multi line text as a block", func(t *testing.T) {
		assert.Equal(t, "/**\n * first\n *\n * second\n */\n", Comment("first\n\nsecond"))
	})

	t.Run("should escape comment terminators", func(t *testing.T) {
		assert.Equal(t, "/** a *\\/ b */\n", Comment("a */ b"))
	})
}

func TestPrintInterface(t *testing.T) {
	decl := Interface{
		Name: "definitions",
		Body: Object{Members: []Member{
			{Key: "Pet", Type: Object{Members: []Member{{Key: "id", Type: Number}}}},
		}},
	}

	assert.Equal(t, "export interface definitions {\n\"Pet\": { \"id\": number; };\n}\n", PrintInterface(decl))
}
