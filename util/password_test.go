package util

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_BcryptCost(t *testing.T) {
	digest, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected a bcrypt digest, got %q", digest)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("bcrypt.Cost failed: %v", err)
	}
	if cost != PasswordCost {
		t.Fatalf("expected cost %d, got %d", PasswordCost, cost)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("password")
	h2, _ := HashPassword("password")
	if h1 == h2 {
		t.Fatalf("expected distinct digests for the same password")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !VerifyPassword("correct horse", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if VerifyPassword("battery staple", digest) {
		t.Fatalf("expected wrong password to fail")
	}
	if VerifyPassword("correct horse", "not-a-digest") {
		t.Fatalf("expected malformed digest to fail without error")
	}
	if VerifyPassword("", "") {
		t.Fatalf("expected empty digest to fail")
	}
}

func TestJWTSecretCopy(t *testing.T) {
	SetJWTSecret("secretA")
	b := GetJWTSecretByte()
	b[0] = 'X'
	if string(GetJWTSecretByte()) != "secretA" {
		t.Fatalf("expected GetJWTSecretByte to return a copy")
	}
}
