package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *Manager {
	return NewManager("test-secret-key-for-testing-only-32b!", 15*time.Minute, 24*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	mgr := newTestManager()

	token, err := mgr.GenerateAccessToken("user-1", "alice@test.com")
	assert.NoError(t, err)

	claims, err := mgr.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice@test.com", claims.Email)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	mgr := newTestManager()

	token, err := mgr.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	claims, err := mgr.VerifyRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestVerifyAccessToken_RejectsRefreshToken(t *testing.T) {
	mgr := newTestManager()

	refresh, _ := mgr.GenerateRefreshToken("user-1")
	_, err := mgr.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshToken_RejectsAccessToken(t *testing.T) {
	mgr := newTestManager()

	access, _ := mgr.GenerateAccessToken("user-1", "alice@test.com")
	_, err := mgr.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	mgr := newTestManager()

	_, err := mgr.VerifyAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", -time.Minute, -time.Minute)

	token, err := mgr.GenerateAccessToken("user-1", "alice@test.com")
	assert.NoError(t, err)

	_, err = mgr.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	token, err := newTestManager().GenerateAccessToken("user-1", "alice@test.com")
	assert.NoError(t, err)

	other := NewManager("a-completely-different-secret-value!!", 15*time.Minute, 24*time.Hour)
	_, err = other.VerifyAccessToken(token)
	assert.Error(t, err)
}
