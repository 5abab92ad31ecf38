// Package auth implements the signed email-confirmation codes. A code is a
// self-verifying HS256 JWT carrying the target email; single use is enforced
// by the user's verification flag, not by revoking the code, so no expiry is
// set.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCode is returned when a confirmation code fails signature or
// shape checks.
var ErrInvalidCode = errors.New("invalid confirmation code")

// Claims binds a confirmation code to the email it proves control of.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateConfirmationCode signs a code for email with the service secret.
func GenerateConfirmationCode(email string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
	})

	code, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return code, nil
}

// EmailFromConfirmationCode verifies the code's signature and returns the
// embedded email. Any parse or signature failure yields ErrInvalidCode.
func EmailFromConfirmationCode(code string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(code, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidCode
	}

	if !token.Valid || claims.Email == "" {
		return "", ErrInvalidCode
	}

	return claims.Email, nil
}
