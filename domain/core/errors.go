package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors - fatal, surfaced before any stage runs
	ErrColumnNotFound = errors.New("target column not found")
	ErrEmptyTable     = errors.New("table has no rows")

	// Ingestion errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedInput    = errors.New("malformed input data")
	ErrDatasetNotFound   = errors.New("dataset not found")

	// Pipeline errors
	ErrChartRender      = errors.New("chart rendering failed")
	ErrStatComputation  = errors.New("statistic computation failed")
	ErrDocumentAssembly = errors.New("document assembly failed")
)

// Error constructors with context
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

func NewChartRenderError(kind string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrChartRender, kind, cause)
}

func NewAssemblyError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDocumentAssembly, reason)
}

// Error checking helpers
func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

func IsEmptyTable(err error) bool {
	return errors.Is(err, ErrEmptyTable)
}

// IsFatal reports whether an error must abort the run. Per-chart and
// per-statistic failures are recovered at their own boundary and never
// reach callers as run-level errors.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrChartRender) && !errors.Is(err, ErrStatComputation)
}
