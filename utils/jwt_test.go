package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyTokenPair(t *testing.T) {
	pair, err := IssueTokenPair("665f1c0a9d3e4b0001a2b3c4", "access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	userID, err := VerifyToken(pair.AccessToken, "access-secret")
	require.NoError(t, err)
	assert.Equal(t, "665f1c0a9d3e4b0001a2b3c4", userID)

	userID, err = VerifyToken(pair.RefreshToken, "refresh-secret")
	require.NoError(t, err)
	assert.Equal(t, "665f1c0a9d3e4b0001a2b3c4", userID)
}

func TestVerifyTokenRejects(t *testing.T) {
	pair, err := IssueTokenPair("665f1c0a9d3e4b0001a2b3c4", "access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(pair.AccessToken, "wrong-secret")
	assert.Error(t, err)

	// Refresh tokens must not pass as access tokens.
	_, err = VerifyToken(pair.RefreshToken, "access-secret")
	assert.Error(t, err)

	_, err = VerifyToken("not-a-token", "access-secret")
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	pair, err := IssueTokenPair("665f1c0a9d3e4b0001a2b3c4", "access-secret", "refresh-secret", -time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(pair.AccessToken, "access-secret")
	assert.Error(t, err)
}
