package utils

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("clave-segura-123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash encoding: %s", hash)
	}
	if !CheckPassword(hash, "clave-segura-123") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "clave-equivocada") {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	a, err := HashPassword("misma-clave")
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashPassword("misma-clave")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two hashes of the same password are identical")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	for _, hash := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$abc$def",
		"$argon2id$v=18$m=65536,t=1,p=4$abc$def",
		"$argon2id$v=19$m=65536,t=1,p=4$not-base64!$def",
	} {
		if CheckPassword(hash, "cualquiera") {
			t.Errorf("malformed hash accepted: %q", hash)
		}
	}
}
