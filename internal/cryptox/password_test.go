package cryptox

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Password1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Password1" {
		t.Fatalf("hash equals plaintext")
	}

	match, err := VerifyPassword("Password1", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !match {
		t.Fatalf("expected match for correct password")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("Password1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	match, err := VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if match {
		t.Fatalf("expected no match for wrong password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("Password1", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatalf("expected error for malformed stored hash")
	}
}

func TestHashPassword_SaltedOutputsDiffer(t *testing.T) {
	a, err := HashPassword("Password1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("Password1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}
