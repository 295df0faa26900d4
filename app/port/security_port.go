package port

//go:generate mockgen -source=security_port.go -destination=../mocks/mock_security_port.go

// PasswordHasher defines one-way credential hashing interface
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hashed. A mismatch is
	// (false, nil); a hash bcrypt cannot parse is (false, err) wrapping
	// domain.ErrHashFormat.
	Verify(plain, hashed string) (bool, error)
}

// TokenCodec defines signing and verification of bearer tokens carrying a
// single user-id claim.
type TokenCodec interface {
	Sign(userID string) (string, error)
	// Verify returns the user id encoded in a valid token. Failures are
	// domain.ErrTokenExpired or domain.ErrTokenInvalid.
	Verify(token string) (string, error)
}
