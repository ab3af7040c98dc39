package oasdoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("should accept a well formed v3 document", func(t *testing.T) {
		content := `openapi: 3.0.3
info:
  title: Pets
  version: "1.0"
paths: {}
components:
  schemas:
    Pet:
      type: object
      properties:
        owner:
          $ref: "#/components/schemas/Person"
    Person:
      type: string
`
		errs := Validate([]byte(content))
		assert.Empty(t, errs)
	})

	t.Run("should report content libopenapi cannot read", func(t *testing.T) {
		errs := Validate([]byte("info: {}"))

		require.Len(t, errs, 1)
		var perr ParserError
		require.True(t, errors.As(errs[0], &perr))
		assert.Equal(t, CodeDocumentCreationError, perr.Code)
	})
}
