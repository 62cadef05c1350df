package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window minted at login.
const DefaultTTL = 30 * time.Minute

// ErrInvalidToken covers every verification failure: malformed input, bad
// signature, missing or past expiry, empty subject. Callers are expected to
// treat all of them identically.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and verifies bearer tokens with a process-wide secret.
// Rotating the secret invalidates everything issued before.
type Service struct {
	Secret []byte
}

// Issue mints a token expiring at now+ttl. A zero or negative ttl produces
// a token that is already expired.
func (s *Service) Issue(subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(s.Secret)
}

func (s *Service) Verify(tokenStr string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return s.Secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
