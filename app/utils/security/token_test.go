package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-graph/app/domain"
)

const testSecret = "test-signing-secret"

func TestJWTCodec_SignAndVerify(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	token, err := codec.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTCodec_ExpiredToken(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	token, err := codec.SignWithTTL("user-123", -time.Second)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTCodec_TamperedSignature(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	token, err := codec.Sign("user-123")
	require.NoError(t, err)

	// Flip one character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)
	other := NewJWTCodec("a-different-secret", time.Hour)

	token, err := other.Sign("user-123")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTCodec_WrongAlgorithm(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	// A token signed with HS512 must be rejected even though the secret
	// matches.
	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTCodec_MalformedToken(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid, "token %q", token)
	}
}

func TestJWTCodec_MissingSubject(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	token, err := codec.Sign("")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
