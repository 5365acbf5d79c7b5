package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough-123"

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService(testSecret, 24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_AdminRole(t *testing.T) {
	service := NewJWTService(testSecret, 24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin())

	token, err = service.GenerateAdminToken(userID)
	require.NoError(t, err)
	claims, err = service.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_EmptyToken(t *testing.T) {
	service := NewJWTService(testSecret, 24)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	service := NewJWTService(testSecret, 24)

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	userID := uuid.New()
	token, err := NewJWTService(testSecret, 24).GenerateToken(userID)
	require.NoError(t, err)

	other := NewJWTService("a-completely-different-secret-key-456", 24)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Negative expiry produces an already-expired token.
	service := NewJWTService(testSecret, -1)
	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := NewJWTService(testSecret, 24)
	userID := uuid.New()
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}
