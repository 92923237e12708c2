package auth

import "testing"

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4) // low cost keeps the test fast

	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !h.Verify("s3cret-pass", hash) {
		t.Fatal("correct password must verify")
	}
	if h.Verify("wrong-pass", hash) {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same input must differ")
	}
	if !h.Verify("same-input", first) || !h.Verify("same-input", second) {
		t.Fatal("both salted hashes must verify against the original password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must verify as false")
	}
	if h.Verify("anything", "") {
		t.Fatal("empty hash must verify as false")
	}
}

func TestNewPasswordHasherClampsCost(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(99)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash error with out-of-range cost: %v", err)
	}
	if !h.Verify("pw", hash) {
		t.Fatal("hash produced with clamped cost must verify")
	}
}
