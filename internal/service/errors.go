package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist
	// or is not visible to the requester.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when a non-owner attempts to mutate or
	// delete a resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists is returned when the username is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidToken is returned for malformed, expired or revoked tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports a malformed or missing field with enough
// structure for the handler to surface field-level detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
