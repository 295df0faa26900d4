package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"auth-graph/app/domain"
)

// AuthUsecase defines authentication business logic interface
type AuthUsecase interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthPayload, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.AuthPayload, error)
}

// UserUsecase defines identity resolution business logic interface
type UserUsecase interface {
	// CurrentUser resolves the profile for the identity carried by ctx.
	// Anonymous requests and since-deleted accounts both yield (nil, nil).
	CurrentUser(ctx context.Context) (*domain.PublicUser, error)
}
