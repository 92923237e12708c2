package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when a caller passes a non-positive ttl to Issue.
// Handlers always pass the configured 30-minute policy value, so this
// fallback is normally dormant.
const DefaultTokenTTL = 15 * time.Minute

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed token, or past expiry. Callers get no finer distinction.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies HS256-signed bearer tokens. The secret
// is fixed at construction for the life of the process.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

// Issue signs a token whose subject is the username and whose expiry is
// now+ttl as numeric seconds since the epoch.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(s.now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the token's subject.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
