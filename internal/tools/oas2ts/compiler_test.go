package oas2ts

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petDefinitions() *Document {
	return &Document{
		Dialect: DialectV2,
		Definitions: schemaMap(named("Pet", object([]string{"id"},
			named("id", typed("integer")),
			named("name", typed("string")),
		))),
	}
}

func TestCompilePreconditions(t *testing.T) {
	t.Run("should refuse a document without a version", func(t *testing.T) {
		doc := petDefinitions()
		doc.Dialect = DialectUnknown

		res, err := Compile(doc, nil)

		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrVersionMissing)
	})

	t.Run("should refuse a nil document", func(t *testing.T) {
		res, err := Compile(nil, nil)

		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrVersionMissing)
	})

	t.Run("should refuse a v2 document without definitions", func(t *testing.T) {
		res, err := Compile(&Document{Dialect: DialectV2}, nil)

		assert.Nil(t, res)
		var perr PreconditionError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, CodeDefinitionsMissing, perr.Code)
		assert.Equal(t, "'definitions' missing from schema https://swagger.io/specification/v2/#definitions-object", err.Error())
	})

	t.Run("should refuse a v3 document without schemas", func(t *testing.T) {
		res, err := Compile(&Document{Dialect: DialectV3, Responses: responses()}, nil)

		assert.Nil(t, res)
		var perr PreconditionError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, CodeComponentsMissing, perr.Code)
	})
}

func TestCompileV2(t *testing.T) {
	t.Run("should emit a definitions interface with required top-level members", func(t *testing.T) {
		res, err := Compile(petDefinitions(), nil)

		require.NoError(t, err)
		expected := Header +
			"export interface definitions {\n" +
			"\"Pet\": { \"id\": number; \"name\"?: string; };\n" +
			"}\n"
		assert.Equal(t, expected, res.Text)
		assert.Empty(t, res.Warnings)
	})

	t.Run("should accept an empty definitions table", func(t *testing.T) {
		res, err := Compile(&Document{Dialect: DialectV2, Definitions: NewSchemaMap()}, nil)

		require.NoError(t, err)
		assert.Equal(t, Header+"export interface definitions {}\n", res.Text)
	})

	t.Run("should describe entities with a leading comment", func(t *testing.T) {
		doc := &Document{
			Dialect:     DialectV2,
			Definitions: schemaMap(named("Tag", &Schema{Type: "string", Description: "A label.\nShort."})),
		}

		res, err := Compile(doc, nil)

		require.NoError(t, err)
		assert.Contains(t, res.Text, "/**\n * A label.\n * Short.\n */\n\"Tag\": string;\n")
	})

	t.Run("should preserve references instead of inlining", func(t *testing.T) {
		doc := &Document{
			Dialect: DialectV2,
			Definitions: schemaMap(
				named("Node", object(nil, named("next", refTo("#/definitions/Node")))),
				named("List", object(nil, named("head", refTo("#/definitions/Node")))),
			),
		}

		res, err := Compile(doc, nil)

		require.NoError(t, err)
		assert.Contains(t, res.Text, `"Node": { "next"?: definitions["Node"]; };`)
		assert.Contains(t, res.Text, `"List": { "head"?: definitions["Node"]; };`)
		assert.Empty(t, res.Warnings)
	})

	t.Run("should warn about references to undeclared entities", func(t *testing.T) {
		doc := &Document{
			Dialect:     DialectV2,
			Definitions: schemaMap(named("Pet", object(nil, named("owner", refTo("#/definitions/Owner"))))),
		}

		res, err := Compile(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, []WarningCode{CodeUnresolvedReference}, warningCodes(res.Warnings))
		assert.Contains(t, res.Warnings[0].Error(), "definitions.Pet.properties.owner")
	})

	t.Run("should be deterministic", func(t *testing.T) {
		doc := endpointDocument()

		first, err := Compile(doc, nil)
		require.NoError(t, err)
		second, err := Compile(doc, nil)
		require.NoError(t, err)

		assert.Equal(t, first.Text, second.Text)
	})
}

func TestCompileV3(t *testing.T) {
	t.Run("should emit components with schemas", func(t *testing.T) {
		doc := &Document{
			Dialect: DialectV3,
			Definitions: schemaMap(
				named("Pet", object([]string{"id"}, named("id", typed("integer")), named("tag", &Schema{Type: "string", Nullable: true}))),
				named("Pets", &Schema{Type: "array", Items: refTo("#/components/schemas/Pet")}),
			),
		}

		res, err := Compile(doc, nil)

		require.NoError(t, err)
		expected := Header +
			"export interface components {\n" +
			"schemas: {\n" +
			"\"Pet\": { \"id\": number; \"tag\"?: string | null; };\n" +
			"\"Pets\": components[\"schemas\"][\"Pet\"][];\n" +
			"};\n" +
			"}\n"
		assert.Equal(t, expected, res.Text)
		assert.Empty(t, res.Warnings)
	})

	t.Run("should emit named responses typed by their schema", func(t *testing.T) {
		doc := &Document{
			Dialect:     DialectV3,
			Definitions: schemaMap(named("Error", object(nil, named("message", typed("string"))))),
			Responses: responses(
				"NotFound", &Response{Description: "Not found", Schema: refTo("#/components/schemas/Error")},
				"Empty", &Response{},
				"Alias", &Response{Ref: "#/components/responses/NotFound"},
			),
		}

		res, err := Compile(doc, nil)

		require.NoError(t, err)
		expected := "responses: {\n" +
			"/** Not found */\n" +
			"\"NotFound\": components[\"schemas\"][\"Error\"];\n" +
			"\"Empty\": { [key: string]: any; };\n" +
			"\"Alias\": components[\"responses\"][\"NotFound\"];\n" +
			"};\n"
		assert.Contains(t, res.Text, expected)
		assert.Empty(t, res.Warnings)
	})

	t.Run("should not emit endpoint members for v3", func(t *testing.T) {
		doc := endpointDocument()
		doc.Dialect = DialectV3

		res, err := Compile(doc, nil)

		require.NoError(t, err)
		assert.NotContains(t, res.Text, pathsDefinitionsKey)
	})
}

func TestCompileOutputIsWellFormed(t *testing.T) {
	res, err := Compile(endpointDocument(), nil)
	require.NoError(t, err)

	body := strings.TrimPrefix(res.Text, Header)
	assert.Equal(t, strings.Count(body, "{"), strings.Count(body, "}"))
	assert.True(t, strings.HasPrefix(body, "export interface definitions {"))
}
