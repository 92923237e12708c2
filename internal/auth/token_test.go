package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("super-secret"))

	tok, err := s.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"))
	issuedAt := time.Now()
	s.now = func() time.Time { return issuedAt }

	tok, err := s.Issue("bob", time.Minute)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Move the wall clock past expiry.
	s.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }

	if _, err := s.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"))
	verifier := NewTokenService([]byte("wrong-secret"))

	tok, err := issuer.Issue("carol", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"))

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := s.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestVerify_RejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "mallory",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsigned token: %v", err)
	}

	if _, err := s.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}

// The 15-minute fallback only applies when callers pass a zero ttl;
// production callers always pass the configured 30-minute value. Both
// paths are pinned here.
func TestIssueDefaultTTL(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"))
	issuedAt := time.Now().Truncate(time.Second)
	s.now = func() time.Time { return issuedAt }

	tests := []struct {
		name    string
		ttl     time.Duration
		wantExp time.Time
	}{
		{name: "zero ttl falls back to 15m", ttl: 0, wantExp: issuedAt.Add(15 * time.Minute)},
		{name: "policy value of 30m is honoured", ttl: 30 * time.Minute, wantExp: issuedAt.Add(30 * time.Minute)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tok, err := s.Issue("dave", tt.ttl)
			if err != nil {
				t.Fatalf("Issue error: %v", err)
			}

			claims := &jwt.RegisteredClaims{}
			_, err = jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
				return []byte("secret"), nil
			})
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if !claims.ExpiresAt.Time.Equal(tt.wantExp) {
				t.Fatalf("expiry mismatch: got %v want %v", claims.ExpiresAt.Time, tt.wantExp)
			}
		})
	}
}
