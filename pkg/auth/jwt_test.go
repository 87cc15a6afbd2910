package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := CreateAccessToken("user-1", RoleClubAdmin, "admin@club.test", "club-1", time.Minute)
	require.NoError(t, err)

	claims, err := ParseValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Sub)
	assert.Equal(t, RoleClubAdmin, claims.Role)
	assert.Equal(t, "club-1", claims.ClubID)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := CreateAccessToken("user-1", RolePlayer, "p@club.test", "", -time.Minute)
	require.NoError(t, err)

	_, err = ParseValidate(tok)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tok, err := CreateAccessToken("user-1", RolePlayer, "p@club.test", "", time.Minute)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseValidate(tok)
	assert.Error(t, err)
}
