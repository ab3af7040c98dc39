package formatter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compiled = `/**
 * This file was auto-generated by oas2ts.
 * Do not make direct changes to the file.
 */

export interface definitions {
"Pet": { "id": number; "tag"?: '}' | '{'; };
pathsDefinitions: {
'/pets/{id}': {
GET: {
/**
 * @summary Find pet 200 OK response
 */
response: definitions["Pet"];
};
};
};
}
`

const indented = `/**
 * This file was auto-generated by oas2ts.
 * Do not make direct changes to the file.
 */

export interface definitions {
  "Pet": { "id": number; "tag"?: '}' | '{'; };
  pathsDefinitions: {
    '/pets/{id}': {
      GET: {
        /**
         * @summary Find pet 200 OK response
         */
        response: definitions["Pet"];
      };
    };
  };
}
`

func TestReindent(t *testing.T) {
	t.Run("should indent by brace depth", func(t *testing.T) {
		assert.Equal(t, indented, Reindent(compiled, ""))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		assert.Equal(t, indented, Reindent(indented, ""))
	})

	t.Run("should use the given indent", func(t *testing.T) {
		assert.Equal(t, "a: {\n\tb: string;\n};", Reindent("a: {\nb: string;\n};", "\t"))
	})

	t.Run("should not go below zero on unbalanced input", func(t *testing.T) {
		assert.Equal(t, "}\n}\nx;", Reindent("}\n}\nx;", ""))
	})
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-prettier")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestFormat(t *testing.T) {
	t.Run("should fall back when prettier is missing", func(t *testing.T) {
		out, err := Format(context.Background(), compiled, Options{Prettier: "oas2ts-no-such-prettier"})

		assert.ErrorIs(t, err, ErrPrettierNotFound)
		assert.Equal(t, indented, out)
	})

	t.Run("should pipe the source through prettier", func(t *testing.T) {
		bin := writeScript(t, "echo \"// $*\"\ncat\n")
		cfg := filepath.Join(t.TempDir(), ".prettierrc")

		out, err := Format(context.Background(), "type A = string;\n", Options{Prettier: bin, PrettierConfig: cfg})

		require.NoError(t, err)
		assert.Equal(t, "// --parser typescript --config "+cfg+"\ntype A = string;\n", out)
	})

	t.Run("should fall back when prettier fails", func(t *testing.T) {
		bin := writeScript(t, "echo 'bad config' >&2\nexit 2\n")

		out, err := Format(context.Background(), compiled, Options{Prettier: bin})

		assert.ErrorContains(t, err, "bad config")
		assert.Equal(t, indented, out)
	})
}
