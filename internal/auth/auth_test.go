package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)

	access, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	uid, err := m.Verify(access, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestTokenManager_KindMismatch(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)

	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.Verify(refresh, KindAccess)
	assert.Error(t, err, "refresh token must not pass as an access token")

	uid, err := m.Verify(refresh, KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager("secret-a", time.Minute, time.Hour)
	other := NewTokenManager("secret-b", time.Minute, time.Hour)

	token, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = other.Verify(token, KindAccess)
	assert.Error(t, err)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute, time.Hour)

	token, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.Verify(token, KindAccess)
	assert.Error(t, err)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, time.Hour)

	_, err := m.Verify("not-a-token", KindAccess)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, CheckPassword("s3cret!", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("s3cret!", "not-a-hash"))
}
