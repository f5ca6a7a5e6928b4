package services

import (
	"testing"
	"tododuk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewAuthTokenService()
	user := &models.User{ID: 42, Email: "alice@example.com"}

	token, err := svc.GenAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, ok := svc.Payload(token)
	require.True(t, ok)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "alice@example.com", email)
}

func TestPayloadRejectsGarbage(t *testing.T) {
	svc := NewAuthTokenService()

	_, _, ok := svc.Payload("not-a-token")
	assert.False(t, ok)

	_, _, ok = svc.Payload("")
	assert.False(t, ok)

	// A token signed with a different secret must not verify.
	other := &AuthTokenService{secret: []byte("completely-different-secret"), ttl: svc.ttl}
	forged, err := other.GenAccessToken(&models.User{ID: 7, Email: "mallory@example.com"})
	require.NoError(t, err)

	_, _, ok = svc.Payload(forged)
	assert.False(t, ok)
}

func TestPayloadRejectsExpired(t *testing.T) {
	svc := NewAuthTokenService()
	svc.ttl = -1 // already expired at mint time

	token, err := svc.GenAccessToken(&models.User{ID: 1, Email: "alice@example.com"})
	require.NoError(t, err)

	_, _, ok := svc.Payload(token)
	assert.False(t, ok)
}
