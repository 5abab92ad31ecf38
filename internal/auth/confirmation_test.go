package auth

import (
	"errors"
	"testing"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	email := "a@x.com"

	code, err := GenerateConfirmationCode(email, secret)
	if err != nil {
		t.Fatalf("GenerateConfirmationCode error: %v", err)
	}

	got, err := EmailFromConfirmationCode(code, secret)
	if err != nil {
		t.Fatalf("EmailFromConfirmationCode error: %v", err)
	}
	if got != email {
		t.Fatalf("email mismatch: got %q want %q", got, email)
	}
}

func TestEmailFromConfirmationCode_WrongSecret(t *testing.T) {
	t.Parallel()

	code, err := GenerateConfirmationCode("a@x.com", []byte("right-secret"))
	if err != nil {
		t.Fatalf("GenerateConfirmationCode error: %v", err)
	}

	_, err = EmailFromConfirmationCode(code, []byte("wrong-secret"))
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode for wrong secret, got %v", err)
	}
}

func TestEmailFromConfirmationCode_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := EmailFromConfirmationCode("not.a.jwt", []byte("k"))
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode for malformed code, got %v", err)
	}
}

func TestGenerateConfirmationCode_DistinctEmailsDistinctCodes(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	a, err := GenerateConfirmationCode("a@x.com", secret)
	if err != nil {
		t.Fatalf("GenerateConfirmationCode error: %v", err)
	}
	b, err := GenerateConfirmationCode("b@x.com", secret)
	if err != nil {
		t.Fatalf("GenerateConfirmationCode error: %v", err)
	}
	if a == b {
		t.Fatalf("codes for distinct emails are identical")
	}
}
