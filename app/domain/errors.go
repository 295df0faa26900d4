package domain

import "errors"

// Authentication errors
var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so the error carries no enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
)

// Token errors. These never cross the transport boundary; the identity
// middleware absorbs them into an anonymous context.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Credential storage errors
var (
	// ErrHashFormat indicates a stored password hash that bcrypt cannot
	// parse. Login treats it as a credential mismatch after logging it.
	ErrHashFormat = errors.New("malformed password hash")
)

// General errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)
