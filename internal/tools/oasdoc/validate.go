package oasdoc

import (
	"errors"

	"github.com/pb33f/libopenapi"
)

// Validate builds the libopenapi model of content and reports what it
// complains about. Compilation never depends on it: the problems it finds
// are advisory.
func Validate(content []byte) []error {
	d, err := libopenapi.NewDocument(content)
	if err != nil {
		return []error{ParserError{
			Code:    CodeDocumentCreationError,
			Message: "failed to create new libopenapi document",
			Err:     err,
		}}
	}

	var errs []error
	switch major(d.GetVersion()) {
	case 2:
		doc, modelErrors := d.BuildV2Model()
		if len(modelErrors) > 0 {
			errs = append(errs, ParserError{
				Code:    CodeModelBuildError,
				Message: "failed to build V2 model",
				Err:     errors.Join(modelErrors...),
			})
		}
		if doc != nil && doc.Index != nil {
			if r := doc.Index.GetResolver(); r != nil {
				for _, re := range r.Resolve() {
					errs = append(errs, resolutionError(re.ErrorRef))
				}
			}
		}
	case 3:
		doc, modelErrors := d.BuildV3Model()
		if len(modelErrors) > 0 {
			errs = append(errs, ParserError{
				Code:    CodeModelBuildError,
				Message: "failed to build V3 model",
				Err:     errors.Join(modelErrors...),
			})
		}
		if doc != nil && doc.Index != nil {
			if r := doc.Index.GetResolver(); r != nil {
				for _, re := range r.Resolve() {
					errs = append(errs, resolutionError(re.ErrorRef))
				}
			}
		}
	}
	return errs
}

func resolutionError(err error) error {
	return ParserError{
		Code:    CodeModelResolutionError,
		Message: "failed to resolve model references",
		Err:     err,
	}
}
