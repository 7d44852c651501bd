package errors

import (
	"errors"
	"fmt"
	"net/http"

	"datareport/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Predefined error codes
const (
	CodeColumnNotFound    = "COLUMN_NOT_FOUND"
	CodeEmptyTable        = "EMPTY_TABLE"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeDatasetNotFound   = "DATASET_NOT_FOUND"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInternalError     = "INTERNAL_ERROR"
)

// FromDomain maps a pipeline error onto a coded AppError for the HTTP
// boundary, keeping the originating failure attached.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, core.ErrColumnNotFound):
		return &AppError{Code: CodeColumnNotFound, Message: "target column not found", Cause: err}
	case errors.Is(err, core.ErrEmptyTable):
		return &AppError{Code: CodeEmptyTable, Message: "table has no rows", Cause: err}
	case errors.Is(err, core.ErrUnsupportedFormat):
		return &AppError{Code: CodeUnsupportedFormat, Message: "unsupported file format", Cause: err}
	case errors.Is(err, core.ErrDatasetNotFound):
		return &AppError{Code: CodeDatasetNotFound, Message: "dataset not found", Cause: err}
	case errors.Is(err, core.ErrMalformedInput):
		return &AppError{Code: CodeInvalidInput, Message: "malformed input data", Cause: err}
	default:
		return &AppError{Code: CodeInternalError, Message: "report generation failed", Cause: err}
	}
}

// HTTPStatus maps an error code to a response status
func HTTPStatus(code string) int {
	switch code {
	case CodeColumnNotFound, CodeDatasetNotFound:
		return http.StatusNotFound
	case CodeEmptyTable, CodeUnsupportedFormat, CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
