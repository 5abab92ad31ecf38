// Package cryptox wraps the password-hashing primitive. bcrypt embeds its
// own salt and cost parameter in the hash output, so verification needs no
// side-channel state.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way hash from plaintext at the given cost
// factor. Cost comes from configuration, never from a caller.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares plaintext against a stored hash. A clean mismatch
// returns (false, nil); a non-nil error means the stored hash itself is
// unusable (malformed or truncated).
func VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
