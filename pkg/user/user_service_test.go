package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceImpl_CreateUser(t *testing.T) {
	t.Run("assigns a fresh uid and id", func(t *testing.T) {
		repo := NewStubUserRepo()
		defer repo.Cleanup()
		service := NewUserService(repo)

		created, err := service.CreateUser(context.Background(), User{
			Username:    "jdoe",
			DisplayName: "Jane Doe",
		})

		require.NoError(t, err)
		assert.NotZero(t, created.Id)
		assert.NotEmpty(t, created.Uid)
		assert.Equal(t, "jdoe", created.Username)

		found, err := service.GetUserByUid(context.Background(), created.Uid)
		require.NoError(t, err)
		assert.Equal(t, created.Id, found.Id)
	})
}

func TestUserServiceImpl_GetCurrentUser(t *testing.T) {
	t.Run("resolves the user carried in context", func(t *testing.T) {
		repo := NewStubUserRepo()
		defer repo.Cleanup()
		service := NewUserService(repo)

		created, err := service.CreateUser(context.Background(), User{Username: "jdoe"})
		require.NoError(t, err)

		ctx := WithUser(context.Background(), created)
		current, err := service.GetCurrentUser(ctx)

		require.NoError(t, err)
		assert.Equal(t, created.Uid, current.Uid)
	})

	t.Run("fails when context carries no user", func(t *testing.T) {
		repo := NewStubUserRepo()
		defer repo.Cleanup()
		service := NewUserService(repo)

		_, err := service.GetCurrentUser(context.Background())

		assert.ErrorIs(t, err, ErrNoUser)
	})
}

func TestUserServiceImpl_GetUserByUid(t *testing.T) {
	t.Run("unknown uid yields ErrUserNotFound", func(t *testing.T) {
		repo := NewStubUserRepo()
		defer repo.Cleanup()
		service := NewUserService(repo)

		_, err := service.GetUserByUid(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
