// Package common defines shared constants and sentinel errors used across
// client and server layers of LedgerKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors. Services wrap ErrValidation with a human-readable
	// reason, e.g. fmt.Errorf("%w: email is required", ErrValidation).
	ErrValidation     = errors.New("validation error")
	ErrDuplicateEmail = errors.New("email already registered")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth guard errors.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
