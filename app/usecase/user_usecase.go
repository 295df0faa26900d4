package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"auth-graph/app/domain"
	"auth-graph/app/identity"
	"auth-graph/app/port"

	"github.com/google/uuid"
)

// UserUseCase resolves the current user from the request identity context
type UserUseCase struct {
	users  port.UserRepository
	logger *slog.Logger
}

// NewUserUseCase creates a new UserUseCase instance
func NewUserUseCase(users port.UserRepository, logger *slog.Logger) *UserUseCase {
	return &UserUseCase{
		users:  users,
		logger: logger.With("component", "user_usecase"),
	}
}

// CurrentUser returns the profile behind the identity carried by ctx.
// Anonymous requests yield (nil, nil). So does a verified token whose user
// record no longer exists: token validity and record existence are checked
// independently, and neither absence is an error.
func (uc *UserUseCase) CurrentUser(ctx context.Context) (*domain.PublicUser, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, nil
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		// A verified token with a non-uuid subject; treat as anonymous.
		uc.logger.Warn("token subject is not a valid user id", "subject", userID)
		return nil, nil
	}

	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	return user.Public(), nil
}
