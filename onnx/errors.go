package onnx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kinds of conversion failures. Errors returned by this package wrap one of these, so they
// can be told apart with errors.Is.
var (
	ErrMissingRequiredAttribute     = errors.New("missing required attribute")
	ErrAttributeTypeMismatch        = errors.New("attribute type mismatch")
	ErrUnsupportedAttributeValue    = errors.New("unsupported attribute value")
	ErrUnsupportedEnumValue         = errors.New("unsupported enum value")
	ErrInvalidAttributeLength       = errors.New("invalid attribute length")
	ErrConflictingAttributeAndInput = errors.New("attribute conflicts with input")
	ErrUnsupportedPadMode           = errors.New("unsupported pad mode")
	ErrUnsupportedOperator          = errors.New("unsupported operator")
	ErrUnsupportedTensorType        = errors.New("unsupported tensor type")
	ErrInvalidScalarShape           = errors.New("invalid scalar shape")
	ErrShapeMismatch                = errors.New("shape mismatch")
	ErrDuplicateNodeName            = errors.New("duplicate node name")
	ErrUnknownReference             = errors.New("unknown reference")
	ErrConversionFailed             = errors.New("conversion failed")
)

// ConversionFailedError is returned when one of the conversion phases ended with recoverable
// errors. It holds every item error of that phase.
type ConversionFailedError struct {
	// Phase names the phase that failed, e.g. "initializers" or "operators".
	Phase  string
	Errors []error
}

// Error implements error.
func (e *ConversionFailedError) Error() string {
	return fmt.Sprintf("%s: errors occurred when converting %d %s", ErrConversionFailed, len(e.Errors), e.Phase)
}

// Count returns the number of recoverable errors found in the phase.
func (e *ConversionFailedError) Count() int {
	return len(e.Errors)
}

// Is makes errors.Is(err, ErrConversionFailed) true.
func (e *ConversionFailedError) Is(target error) bool {
	return target == ErrConversionFailed
}

// Unwrap returns the item errors, so errors.Is also finds their kinds.
func (e *ConversionFailedError) Unwrap() []error {
	return e.Errors
}
