package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account as stored by the repository.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the outward-facing shape of a user. It is the only user
// representation that crosses the transport boundary.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Public converts a stored user into its outward-facing shape.
// CreatedAt is rendered as RFC 3339 in UTC.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AuthPayload is returned by both register and login: a signed bearer token
// plus the public profile it authenticates.
type AuthPayload struct {
	Token string      `json:"token"`
	User  *PublicUser `json:"user"`
}

// RegisterInput carries the register mutation arguments. Validation rules
// mirror the public API contract: name at least 2 characters, well-formed
// email, password at least 6 characters.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput carries the login mutation arguments.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// NormalizeEmail canonicalizes an email address for lookup and storage.
// Emails are compared case-insensitively, so the lower-cased form is the
// one persisted.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
