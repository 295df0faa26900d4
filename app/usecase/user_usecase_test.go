package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-graph/app/identity"
	mock_port "auth-graph/app/mocks"
	"auth-graph/app/utils/logger"
)

func newTestUserUseCase(t *testing.T) (*UserUseCase, *mock_port.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock_port.NewMockUserRepository(ctrl)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	return NewUserUseCase(users, testLogger), users
}

func TestUserUseCase_CurrentUser(t *testing.T) {
	t.Run("anonymous context yields no user and no error", func(t *testing.T) {
		uc, _ := newTestUserUseCase(t)

		user, err := uc.CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("authenticated context resolves the profile", func(t *testing.T) {
		uc, users := newTestUserUseCase(t)
		stored := testUser(t)

		users.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		ctx := identity.WithUserID(context.Background(), stored.ID.String())
		user, err := uc.CurrentUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, stored.ID.String(), user.ID)
		assert.Equal(t, stored.Name, user.Name)
		assert.Equal(t, stored.Email, user.Email)
	})

	t.Run("deleted user yields no user and no error", func(t *testing.T) {
		uc, users := newTestUserUseCase(t)
		stored := testUser(t)

		users.EXPECT().FindByID(gomock.Any(), stored.ID).Return(nil, nil)

		ctx := identity.WithUserID(context.Background(), stored.ID.String())
		user, err := uc.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("non-uuid subject is treated as anonymous", func(t *testing.T) {
		uc, _ := newTestUserUseCase(t)

		ctx := identity.WithUserID(context.Background(), "not-a-uuid")
		user, err := uc.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		uc, users := newTestUserUseCase(t)
		stored := testUser(t)

		users.EXPECT().FindByID(gomock.Any(), stored.ID).Return(nil, errors.New("connection reset"))

		ctx := identity.WithUserID(context.Background(), stored.ID.String())
		user, err := uc.CurrentUser(ctx)
		require.Error(t, err)
		assert.Nil(t, user)
	})
}
