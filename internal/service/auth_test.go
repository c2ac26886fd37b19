package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pengu1Nus/recipe-api/internal/service"
	"github.com/Pengu1Nus/recipe-api/internal/testhelpers"
	"github.com/Pengu1Nus/recipe-api/internal/types"
)

func TestRegisterValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret", nil)
	ctx := context.Background()

	var validationErr *service.ValidationError

	_, err := auth.Register(ctx, "   ", "Name", "testpass123")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Field)

	_, err = auth.Register(ctx, "user1", "Name", "1234")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password", validationErr.Field)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret", nil)
	ctx := context.Background()

	_, err := auth.Register(ctx, "user1", "First", "testpass123")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "user1", "Second", "otherpass123")
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestLoginAndValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret", nil)
	ctx := context.Background()

	user, err := auth.Register(ctx, "user1", "Name", "testpass123")
	require.NoError(t, err)

	token, err := auth.Login(ctx, "user1", "testpass123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user1", claims.Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret", nil)
	ctx := context.Background()

	_, err := auth.Register(ctx, "user1", "Name", "testpass123")
	require.NoError(t, err)

	_, err = auth.Login(ctx, "user1", "wrongpass")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody", "testpass123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret", nil)
	ctx := context.Background()

	_, err := auth.ValidateToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	// A token signed with a different secret must not validate.
	otherAuth := service.NewAuthService(db, "other-secret", nil)
	_, err = otherAuth.Register(ctx, "user1", "Name", "testpass123")
	require.NoError(t, err)
	token, err := otherAuth.Login(ctx, "user1", "testpass123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestUpdateUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret", nil)
	ctx := context.Background()

	user, err := auth.Register(ctx, "user1", "Name", "testpass123")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "user2", "Other", "testpass123")
	require.NoError(t, err)

	newName := "Новое имя"
	newPassword := "newpass123"
	updated, err := auth.UpdateUser(ctx, user.ID, &types.UpdateUserRequest{
		Name:     &newName,
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "Новое имя", updated.Name)

	// The new password takes effect immediately.
	_, err = auth.Login(ctx, "user1", "newpass123")
	require.NoError(t, err)
	_, err = auth.Login(ctx, "user1", "testpass123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// Taking another user's username is rejected.
	taken := "user2"
	_, err = auth.UpdateUser(ctx, user.ID, &types.UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestLogoutWithoutTokenStore(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret", nil)
	ctx := context.Background()

	_, err := auth.Register(ctx, "user1", "Name", "testpass123")
	require.NoError(t, err)
	token, err := auth.Login(ctx, "user1", "testpass123")
	require.NoError(t, err)

	// Without redis, logout validates the token and is otherwise a no-op.
	require.NoError(t, auth.Logout(ctx, token))
	assert.ErrorIs(t, auth.Logout(ctx, "garbage"), service.ErrInvalidToken)
}
