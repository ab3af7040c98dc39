// Package oas2ts compiles OpenAPI v2 and v3 documents into TypeScript
// interface declarations.
//
// The entry point is Compile. It checks the preconditions of the detected
// dialect, runs the optional PropertyMapper over a copy of the named
// entities, transforms every schema into a tsexpr.Expr and prints one
// `export interface` block: `definitions` for v2 and `components` for v3.
// Anomalies that do not prevent output are returned as warnings.
package oas2ts

import (
	"github.com/krateoplatformops/oas2ts/internal/tools/tsexpr"
)

// Header is the provenance comment every compilation starts with.
const Header = `/**
 * This file was auto-generated by oas2ts.
 * Do not make direct changes to the file.
 */

`

// Compile turns doc into declaration text. cfg may be nil.
//
// It fails only on precondition violations (see PreconditionError); no
// partial output is returned in that case.
func Compile(doc *Document, cfg *Config) (*Result, error) {
	if doc == nil {
		return nil, ErrVersionMissing
	}
	if cfg == nil {
		cfg = &Config{}
	}

	var (
		t    = newTransformer(doc.Dialect)
		decl tsexpr.Interface
	)
	switch doc.Dialect {
	case DialectV2:
		if doc.Definitions == nil {
			return nil, errDefinitionsMissing()
		}
		decl = t.definitionsV2(doc, applyPropertyMapper(doc.Definitions, cfg.PropertyMapper))
	case DialectV3:
		if doc.Definitions == nil {
			return nil, errComponentsMissing()
		}
		decl = t.componentsV3(doc, applyPropertyMapper(doc.Definitions, cfg.PropertyMapper))
	default:
		return nil, ErrVersionMissing
	}

	return &Result{
		Text:     Header + tsexpr.PrintInterface(decl),
		Warnings: t.warnings,
	}, nil
}
