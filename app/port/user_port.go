package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"auth-graph/app/domain"

	"github.com/google/uuid"
)

// UserRepository defines user data access interface.
// Lookups return (nil, nil) when no row matches; only infrastructure
// failures produce a non-nil error.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// Create inserts a new user and returns it with the assigned id and
	// creation timestamp. A unique-email violation surfaces as
	// domain.ErrEmailTaken.
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
}
