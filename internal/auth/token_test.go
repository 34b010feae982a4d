package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	ti := NewTokenIssuer([]byte("secret-1"), time.Hour)

	token, err := ti.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ti.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyWrongSecret(t *testing.T) {
	ti := NewTokenIssuer([]byte("secret-1"), time.Hour)
	other := NewTokenIssuer([]byte("secret-2"), time.Hour)

	token, err := ti.Generate("user-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	ti := NewTokenIssuer([]byte("secret-1"), -time.Minute)

	token, err := ti.Generate("user-123")
	require.NoError(t, err)

	_, err = ti.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyGarbage(t *testing.T) {
	ti := NewTokenIssuer([]byte("secret-1"), time.Hour)

	_, err := ti.Verify("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
