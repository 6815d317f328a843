package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/auth"
)

var secret = []byte("test-secret")

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := auth.GenerateToken("user-123", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := auth.GetUserIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	token, err := auth.GenerateToken("user-123", secret, -time.Minute)
	require.NoError(t, err)

	_, err = auth.GetUserIDFromToken(token, secret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("user-123", secret, time.Hour)
	require.NoError(t, err)

	_, err = auth.GetUserIDFromToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	_, err := auth.GetUserIDFromToken("not-a-token", secret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
