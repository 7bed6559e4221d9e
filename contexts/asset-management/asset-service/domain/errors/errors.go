package errors

import "errors"

var (
	// ErrForbidden is returned when the caller's role denies the operation
	// outright. Out-of-scope reads surface ErrAssetNotFound instead so that
	// record existence never leaks to non-admin callers.
	ErrForbidden     = errors.New("operation requires admin role")
	ErrAssetNotFound = errors.New("asset not found")
	ErrValidation    = errors.New("invalid asset input")
	ErrConflict      = errors.New("asset was modified concurrently")
)
