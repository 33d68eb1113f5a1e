package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates no parser handles the document format.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyDocument indicates a document contained no usable text.
	// Callers treat this as a skip condition, not a run failure.
	ErrEmptyDocument = errors.New("empty document")

	// ErrBudgetExceeded indicates the run exceeded its wall-clock or
	// memory budget. The run is aborted; already-computed ranks are
	// discarded rather than silently truncated.
	ErrBudgetExceeded = errors.New("analysis budget exceeded")

	// ErrInvalidConfig indicates the analysis configuration failed
	// validation (e.g. fusion weights that do not sum to 1).
	ErrInvalidConfig = errors.New("invalid analysis configuration")
)
