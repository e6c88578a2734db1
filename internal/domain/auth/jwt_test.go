package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, err := svc.GenerateAccessToken("user-1", "Kim", true, time.Hour)
	require.NoError(t, err)

	user, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.UserID)
	assert.Equal(t, "Kim", user.Name)
	assert.True(t, user.IsAdmin)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService(DefaultJWTConfig("secret-a")).
		GenerateAccessToken("user-1", "", false, time.Hour)
	require.NoError(t, err)

	_, err = NewJWTService(DefaultJWTConfig("secret-b")).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, err := svc.GenerateAccessToken("user-1", "", false, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
