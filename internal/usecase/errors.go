package usecase

import "errors"

// Sentinel errors mapped onto HTTP statuses by the handlers. Lookups scoped to
// a missing or foreign resource report ErrNotFound rather than ErrForbidden so
// callers cannot probe for other users' records.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
	ErrInvalidEmail    = errors.New("Invalid email")
	ErrInvalidPassword = errors.New("Invalid password")
)
