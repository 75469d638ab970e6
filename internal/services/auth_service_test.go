package services

import (
	"testing"

	"github.com/rohanjsheth/Paper-Trader/internal/database"
	"github.com/rohanjsheth/Paper-Trader/internal/models"
	"github.com/rohanjsheth/Paper-Trader/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) (*gorm.DB, *repository.UserRepository, *AuthService) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, decimal.RequireFromString("10000"))

	return db, userRepo, authService
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	_, _, authService := setupAuthTestDB(t)

	user, err := authService.Register("alice", "abcdefg!", "abcdefg!")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "10000.00", user.Cash.StringFixed(2))
	assert.NotEqual(t, "abcdefg!", user.Hash)

	loggedIn, err := authService.Login("alice", "abcdefg!")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	db, _, authService := setupAuthTestDB(t)

	_, err := authService.Register("alice", "abcdefg!", "abcdefg!")
	require.NoError(t, err)

	_, err = authService.Register("alice", "another1!", "another1!")
	assert.Equal(t, ErrUsernameTaken, err)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_RegisterMissingFields(t *testing.T) {
	_, _, authService := setupAuthTestDB(t)

	_, err := authService.Register("", "abcdefg!", "abcdefg!")
	assert.Equal(t, ErrUsernameRequired, err)

	_, err = authService.Register("alice", "", "")
	assert.Equal(t, ErrPasswordRequired, err)

	_, err = authService.Register("alice", "abcdefg!", "different")
	assert.Equal(t, ErrPasswordMismatch, err)
}

func TestAuthService_RegisterPasswordRules(t *testing.T) {
	_, _, authService := setupAuthTestDB(t)

	// Too short.
	_, err := authService.Register("alice", "abcdef!", "abcdef!")
	assert.Equal(t, ErrPasswordTooShort, err)

	// Long enough but no special character and no digit.
	_, err = authService.Register("alice", "abcdefgh", "abcdefgh")
	assert.Equal(t, ErrPasswordTooWeak, err)

	// Special character satisfies complexity.
	_, err = authService.Register("alice", "abcdefg!", "abcdefg!")
	assert.NoError(t, err)

	// A digit satisfies complexity too.
	_, err = authService.Register("bob", "abcdefg1", "abcdefg1")
	assert.NoError(t, err)
}

func TestAuthService_LoginBadCredentials(t *testing.T) {
	_, _, authService := setupAuthTestDB(t)

	_, err := authService.Register("alice", "abcdefg!", "abcdefg!")
	require.NoError(t, err)

	_, err = authService.Login("alice", "wrongpass")
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = authService.Login("nobody", "abcdefg!")
	assert.Equal(t, ErrInvalidCredentials, err)
}
