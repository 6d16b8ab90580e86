package funcy

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Sentinel errors for errors.Is classification of render failures.
var (
	ErrUnknownFunction = errors.New(ErrMsgUnknownFunction)
	ErrFunctionFailed  = errors.New(ErrMsgFunctionFailed)
)

// UnknownFunctionError is returned by Render when a tag names a function
// that has no registered handler. Tag carries the span and content of the
// offending placeholder.
type UnknownFunctionError struct {
	Tag Tag
}

// NewUnknownFunctionError creates an unknown function error for tag
func NewUnknownFunctionError(tag Tag) *UnknownFunctionError {
	return &UnknownFunctionError{Tag: tag}
}

// Error implements the error interface
func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf(ErrFmtUnknownFunction, e.Tag.Start, e.Tag.Content)
}

// Is reports whether target is ErrUnknownFunction
func (e *UnknownFunctionError) Is(target error) bool {
	return target == ErrUnknownFunction
}

// Unwrap exposes the error as a *cuserr.CustomError with span metadata.
func (e *UnknownFunctionError) Unwrap() error {
	name, _ := SplitContent(e.Tag.Content)
	return cuserr.NewCustomErrorWithCategory(cuserr.ErrorCategoryNotFound, ErrCodeUnknownFunction, ErrMsgUnknownFunction).
		WithMetadata(MetaKeyFunction, name).
		WithMetadata(MetaKeyContent, e.Tag.Content).
		WithMetadata(MetaKeyStart, strconv.Itoa(e.Tag.Start)).
		WithMetadata(MetaKeyEnd, strconv.Itoa(e.Tag.End))
}

// FunctionError is returned by Render when a handler reports failure.
// Message is the handler's error text, unmodified. Cause is the error the
// handler returned.
type FunctionError struct {
	Name    string
	Message string
	Cause   error
}

// NewFunctionError wraps a handler failure for the named function
func NewFunctionError(name string, cause error) *FunctionError {
	return &FunctionError{
		Name:    name,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// Error implements the error interface
func (e *FunctionError) Error() string {
	return fmt.Sprintf(ErrFmtFunctionError, e.Name, e.Message)
}

// Is reports whether target is ErrFunctionFailed
func (e *FunctionError) Is(target error) bool {
	return target == ErrFunctionFailed
}

// Unwrap exposes the error as a *cuserr.CustomError wrapping Cause.
func (e *FunctionError) Unwrap() error {
	cause := e.Cause
	if cause == nil {
		cause = errors.New(e.Message)
	}
	return cuserr.WrapWithCustomError(cause, cuserr.ErrorCategoryInternal, ErrCodeFunction, ErrMsgFunctionFailed).
		WithMetadata(MetaKeyFunction, e.Name).
		WithMetadata(MetaKeyMessage, e.Message)
}
