// Package common defines shared constants and sentinel errors used across
// the user service. Callers should use errors.Is to match these values.
package common

import "errors"

// The error kinds below form a closed set: every failure an identity
// operation can report wraps exactly one of them. Call sites add an
// operation-specific message with fmt.Errorf("...: %w", kind); messages for
// ErrRepository stay generic so storage internals never leak to callers.
var (
	// Field-shape violations (email, username, password).
	ErrValidation = errors.New("validation failure")

	// Uniqueness conflicts on registration.
	ErrAlreadyExists = errors.New("already exists")

	// Missing user or reset token.
	ErrNotFound = errors.New("not found")

	// Password-change business rules.
	ErrIdenticalPassword = errors.New("identical password")
	ErrPasswordMismatch  = errors.New("password does not match")

	// Email verification state.
	ErrNotVerified     = errors.New("email not verified")
	ErrAlreadyVerified = errors.New("email already verified")

	// Any fault below the business-logic layer (storage, hashing primitive,
	// mail dispatch).
	ErrRepository = errors.New("repository failure")
)
