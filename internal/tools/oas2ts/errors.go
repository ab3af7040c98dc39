package oas2ts

import "fmt"

// PreconditionCode defines the machine-readable codes for fatal input problems.
type PreconditionCode string

const (
	// CodeVersionMissing indicates that neither a v2 nor a v3 version marker was found.
	CodeVersionMissing PreconditionCode = "VersionMissing"
	// CodeDefinitionsMissing indicates a v2 document without `definitions`.
	CodeDefinitionsMissing PreconditionCode = "DefinitionsMissing"
	// CodeComponentsMissing indicates a v3 document without `components.schemas`.
	CodeComponentsMissing PreconditionCode = "ComponentsMissing"
)

// PreconditionError aborts a compilation before any output is produced.
type PreconditionError struct {
	Code    PreconditionCode
	Field   string
	Message string
	SpecURL string
}

func (e PreconditionError) Error() string {
	if e.SpecURL == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Message, e.SpecURL)
}

// ErrVersionMissing is returned when the dialect cannot be determined.
var ErrVersionMissing = PreconditionError{
	Code:    CodeVersionMissing,
	Field:   "swagger/openapi",
	Message: "version missing from schema; specify whether this is OpenAPI v3 or v2",
	SpecURL: "https://swagger.io/specification",
}

func errDefinitionsMissing() error {
	return PreconditionError{
		Code:    CodeDefinitionsMissing,
		Field:   "definitions",
		Message: "'definitions' missing from schema",
		SpecURL: "https://swagger.io/specification/v2/#definitions-object",
	}
}

func errComponentsMissing() error {
	return PreconditionError{
		Code:    CodeComponentsMissing,
		Field:   "components",
		Message: "'components' missing from schema",
		SpecURL: "https://swagger.io/specification",
	}
}

// WarningCode defines a machine-readable code for an absorbed anomaly.
type WarningCode string

const (
	// CodeMalformedReference indicates a $ref that does not start with "#/".
	CodeMalformedReference WarningCode = "MalformedReference"
	// CodeUnresolvedReference indicates a $ref whose target is not a declared entity.
	CodeUnresolvedReference WarningCode = "UnresolvedReference"
	// CodeSkippedResponse indicates a response that is a bare reference or has no schema.
	CodeSkippedResponse WarningCode = "SkippedResponse"
	// CodeSkippedParameter indicates a reference-only parameter or an unknown location.
	CodeSkippedParameter WarningCode = "SkippedParameter"
	// CodeEmptyComposition indicates an alternatives/oneOf/anyOf/allOf list with no members.
	CodeEmptyComposition WarningCode = "EmptyComposition"
	// CodeRenamedMember indicates a synthesized name that was suffixed to stay unique.
	CodeRenamedMember WarningCode = "RenamedMember"
)

// CompileWarning describes input the compiler tolerated instead of rejecting.
type CompileWarning struct {
	Path    string
	Code    WarningCode
	Message string
}

func (e CompileWarning) Error() string {
	return fmt.Sprintf("compile warning at %s: %s", e.Path, e.Message)
}
