// Package oasdoc reads OpenAPI v2 and v3 documents, in JSON or YAML, into
// the ordered model compiled by oas2ts.
package oasdoc

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/krateoplatformops/oas2ts/internal/tools/oas2ts"
	"github.com/krateoplatformops/oas2ts/internal/tools/safety"
	"github.com/pb33f/libopenapi"
	"gopkg.in/yaml.v3"
)

// Options tunes Parse.
type Options struct {
	Limits safety.Limits
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Limits: safety.DefaultLimits()}
}

// Parse decodes content and detects its dialect. A document without a
// recognizable swagger or openapi version fails with oas2ts.ErrVersionMissing.
//
// Missing containers are left nil on the returned Document; reporting them
// is up to oas2ts.Compile.
func Parse(ctx context.Context, content []byte, opts ...Options) (*oas2ts.Document, error) {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	root, err := rootNode(content)
	if err != nil {
		return nil, err
	}

	dialect := DetectDialect(root)
	if dialect == oas2ts.DialectUnknown {
		return nil, oas2ts.ErrVersionMissing
	}

	guard := safety.NewRecursionGuard(o.Limits)
	gctx, cancel := guard.WithContext(ctx)
	defer cancel()

	d := &decoder{ctx: gctx, guard: guard}
	doc := &oas2ts.Document{Dialect: dialect}
	if err := d.document(doc, root); err != nil {
		return nil, ParserError{
			Code:    CodeDecodeError,
			Message: "failed to decode document",
			Err:     err,
		}
	}
	return doc, nil
}

func (d *decoder) document(doc *oas2ts.Document, root *yaml.Node) (err error) {
	switch doc.Dialect {
	case oas2ts.DialectV2:
		if defs := lookup(root, "definitions"); isMapping(defs) {
			if doc.Definitions, err = d.schemaMap(defs, 0); err != nil {
				return err
			}
		}
		if paths := lookup(root, "paths"); isMapping(paths) {
			doc.Paths, err = d.paths(paths)
		}
	case oas2ts.DialectV3:
		components := lookup(root, "components")
		if schemas := lookup(components, "schemas"); isMapping(schemas) {
			if doc.Definitions, err = d.schemaMap(schemas, 0); err != nil {
				return err
			}
		}
		if responses := lookup(components, "responses"); isMapping(responses) {
			doc.Responses, err = d.responses(responses)
		}
	}
	return err
}

// rootNode returns the yaml tree of content. libopenapi reads it first;
// documents it refuses (no version marker, unsupported version) are read
// with yaml.v3 directly so the caller can still tell what is missing.
func rootNode(content []byte) (*yaml.Node, error) {
	doc, err := libopenapi.NewDocument(content)
	if err == nil {
		if info := doc.GetSpecInfo(); info != nil && info.RootNode != nil {
			return info.RootNode, nil
		}
	}

	var node yaml.Node
	if yerr := yaml.Unmarshal(content, &node); yerr != nil {
		return nil, ParserError{
			Code:    CodeDocumentCreationError,
			Message: "failed to read document",
			Err:     errors.Join(err, yerr),
		}
	}
	if resolve(&node) == nil {
		return nil, ParserError{
			Code:    CodeDocumentCreationError,
			Message: "document is empty",
		}
	}
	return &node, nil
}

// DetectDialect reads the integer major version of `openapi` (3) or
// `swagger` (2). Anything else is DialectUnknown.
func DetectDialect(root *yaml.Node) oas2ts.Dialect {
	if major(scalar(lookup(root, "openapi"))) == 3 {
		return oas2ts.DialectV3
	}
	if major(scalar(lookup(root, "swagger"))) == 2 {
		return oas2ts.DialectV2
	}
	return oas2ts.DialectUnknown
}

// major parses the leading digits of a version string: "3.0.1" is 3,
// "2.0" is 2, "v3" is not a version.
func major(version string) int {
	version = strings.TrimLeftFunc(version, unicode.IsSpace)
	end := strings.IndexFunc(version, func(r rune) bool { return r < '0' || r > '9' })
	if end == -1 {
		end = len(version)
	}
	n, err := strconv.Atoi(version[:end])
	if err != nil {
		return -1
	}
	return n
}
