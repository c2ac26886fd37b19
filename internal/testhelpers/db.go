package testhelpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pengu1Nus/recipe-api/internal/database"
	"github.com/Pengu1Nus/recipe-api/internal/models"
	"github.com/Pengu1Nus/recipe-api/internal/service"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full
// schema applied. Each call gets its own named memory database so
// parallel tests do not share state.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))
	return db
}

// CreateTestUser registers a user through the auth service so the
// password hash is realistic, and returns the user with a valid token.
func CreateTestUser(t *testing.T, db *gorm.DB, username string) (*models.User, string) {
	t.Helper()

	authService := service.NewAuthService(db, "test-secret", nil)
	user, err := authService.Register(context.Background(), username, "Test User", "testpass123")
	require.NoError(t, err)

	token, err := authService.Login(context.Background(), username, "testpass123")
	require.NoError(t, err)

	return user, token
}
