package services

import (
	"testing"
	"time"

	"github.com/rohanjsheth/Paper-Trader/internal/database"
	"github.com/rohanjsheth/Paper-Trader/internal/models"
	"github.com/rohanjsheth/Paper-Trader/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenTestDB(t *testing.T) (*repository.UserRepository, *TokenService) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tokenService := NewTokenService(tokenRepo, userRepo, "test-secret")

	return userRepo, tokenService
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	userRepo, tokenService := setupTokenTestDB(t)

	user := &models.User{Username: "alice", Hash: "x", Cash: decimal.Zero}
	require.NoError(t, userRepo.Create(user))

	tokenString, err := tokenService.GenerateToken(user.ID, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := tokenService.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenService_UnknownUser(t *testing.T) {
	_, tokenService := setupTokenTestDB(t)

	_, err := tokenService.GenerateToken(99, time.Hour)
	assert.Equal(t, ErrUserNotFound, err)
}

func TestTokenService_GarbageToken(t *testing.T) {
	_, tokenService := setupTokenTestDB(t)

	_, err := tokenService.ValidateToken("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenService_DeletedTokenRejected(t *testing.T) {
	userRepo, tokenService := setupTokenTestDB(t)

	user := &models.User{Username: "alice", Hash: "x", Cash: decimal.Zero}
	require.NoError(t, userRepo.Create(user))

	tokenString, err := tokenService.GenerateToken(user.ID, time.Hour)
	require.NoError(t, err)

	tokens, err := tokenService.ListUserTokens(user.ID)
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	require.NoError(t, tokenService.DeleteToken(tokens[0].ID, user.ID))

	_, err = tokenService.ValidateToken(tokenString)
	assert.Equal(t, ErrInvalidToken, err)
}
