package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash should not equal the plaintext password")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("CheckPassword() should accept the original password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("CheckPassword() should reject a wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}
