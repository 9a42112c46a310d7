package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. end date before start date, unknown preference type).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrMatching wraps any query-layer failure during a matching run.
// Matching is all-or-nothing: one failed candidate query aborts the whole
// operation and no partial results are returned.
// Handlers should map this to HTTP 500.
var ErrMatching = errors.New("matching failed")
