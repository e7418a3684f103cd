package domain

import "errors"

// Error classes shared by every engagement operation. Package specific errors
// wrap one of these so callers can branch on the class with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
)
