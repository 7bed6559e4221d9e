package errors

import "errors"

var (
	ErrForbidden    = errors.New("operation requires admin role")
	ErrUserNotFound = errors.New("user not found")
	ErrValidation   = errors.New("invalid user input")
	ErrEmailTaken   = errors.New("email already registered")
)
