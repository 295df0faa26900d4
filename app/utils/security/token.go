package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"auth-graph/app/domain"
)

// JWTCodec implements port.TokenCodec with HS256-signed JWTs. The token
// carries a single identity claim: the user id in the subject, plus the
// standard issued-at and expiry timestamps. There is no server-side session
// state, so a token stays valid until its expiry.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec creates a codec signing with secret and issuing tokens that
// expire after ttl.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign issues a token for userID expiring after the configured TTL.
func (c *JWTCodec) Sign(userID string) (string, error) {
	return c.SignWithTTL(userID, c.ttl)
}

// SignWithTTL issues a token with an explicit TTL. A negative ttl produces
// an already-expired token.
func (c *JWTCodec) SignWithTTL(userID string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a token and returns the user id
// it carries. Only HS256 is accepted; a token signed with any other method
// fails as invalid regardless of its payload. No expiry leeway is granted.
func (c *JWTCodec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}

	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}

	return claims.Subject, nil
}
