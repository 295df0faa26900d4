package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"auth-graph/app/domain"
	"auth-graph/app/port"
	"auth-graph/app/utils/validator"
)

// AuthUseCase implements registration and login business logic
type AuthUseCase struct {
	users    port.UserRepository
	hasher   port.PasswordHasher
	tokens   port.TokenCodec
	validate *validator.Validator
	logger   *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(users port.UserRepository, hasher port.PasswordHasher, tokens port.TokenCodec, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger.With("component", "auth_usecase"),
	}
}

// Register creates a new account and signs a bearer token for it.
//
// The email pre-check gives registrations a friendly conflict error without
// a round trip through the insert; the unique index on users.email remains
// the authoritative guard, so a concurrent duplicate still surfaces as
// domain.ErrEmailTaken from Create.
func (uc *AuthUseCase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthPayload, error) {
	if err := uc.validate.Validate(input); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := uc.users.Create(ctx, input.Name, email, hash)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Sign(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID)

	return &domain.AuthPayload{
		Token: token,
		User:  user.Public(),
	}, nil
}

// Login authenticates an existing account and signs a fresh bearer token.
//
// An unknown email and a wrong password return the same
// domain.ErrInvalidCredentials so the response carries no enumeration
// signal. A stored hash bcrypt cannot parse is logged and reported as the
// same credential failure.
func (uc *AuthUseCase) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthPayload, error) {
	if err := uc.validate.Validate(input); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := uc.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		uc.logger.Error("stored password hash is unreadable", "user_id", user.ID, "error", err)
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Sign(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.AuthPayload{
		Token: token,
		User:  user.Public(),
	}, nil
}
