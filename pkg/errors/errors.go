// Package errors provides structured error types for gedtree.
//
// Errors carry a machine-readable [Code] so that the CLI and the HTTP API can
// report failures consistently:
//   - INVALID_*: the input could not be accepted
//   - *NOT_FOUND: a file, document or individual is missing
//   - WRONG_KIND: a query received a record of the wrong type
//   - INTERNAL_*: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPointer, "invalid pointer: %s", ptr)
//	if errors.Is(err, errors.ErrCodeInvalidPointer) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "failed to save %s", id)
//
// Errors produced by the gedcom package are mapped onto codes by [Classify].
package errors

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPointer Code = "INVALID_POINTER"
	ErrCodeInvalidID      Code = "INVALID_ID"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeWrongKind      Code = "WRONG_KIND"

	// Resource not found errors
	ErrCodeNotFound           Code = "NOT_FOUND"
	ErrCodeFileNotFound       Code = "FILE_NOT_FOUND"
	ErrCodeDocumentNotFound   Code = "DOCUMENT_NOT_FOUND"
	ErrCodeIndividualNotFound Code = "INDIVIDUAL_NOT_FOUND"

	// Backend errors
	ErrCodeStorage Code = "STORAGE_ERROR"
	ErrCodeCache   Code = "CACHE_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Classify maps an error onto a [Code]. Structured errors keep their code;
// parser and query errors from the gedcom package and missing files get the
// matching code; anything else is internal. A nil error has no code.
func Classify(err error) Code {
	if err == nil {
		return ""
	}
	if code := GetCode(err); code != "" {
		return code
	}
	var (
		fv *gedcom.FormatViolationError
		wk *gedcom.WrongKindError
	)
	switch {
	case errors.As(err, &fv):
		return ErrCodeInvalidFormat
	case errors.As(err, &wk):
		return ErrCodeWrongKind
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeFileNotFound
	case errors.Is(err, gedcom.ErrLevelMismatch):
		return ErrCodeInvalidInput
	}
	return ErrCodeInternal
}

// IsNotFound reports whether the code belongs to the not-found family.
func IsNotFound(code Code) bool {
	switch code {
	case ErrCodeNotFound, ErrCodeFileNotFound, ErrCodeDocumentNotFound, ErrCodeIndividualNotFound:
		return true
	}
	return false
}
