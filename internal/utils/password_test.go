package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret-pass" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt digest, got %q", hash)
	}

	if !VerifyPassword(hash, "s3cret-pass") {
		t.Error("expected password to verify")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Error("expected wrong password to be rejected")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")

	if h1 == h2 {
		t.Error("expected different digests for the same password")
	}
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	if VerifyPassword("not-a-hash", "anything") {
		t.Error("expected garbage hash to never verify")
	}
}
