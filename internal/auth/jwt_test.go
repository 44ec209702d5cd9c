package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	jwtAuth := NewJWTAuthenticator("brainbin", "brainbin")

	token, err := jwtAuth.GenerateSessionToken("user-123", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtAuth.ValidateSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateSessionTokenExpired(t *testing.T) {
	jwtAuth := NewJWTAuthenticator("brainbin", "brainbin")

	token, err := jwtAuth.GenerateSessionToken("user-123", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = jwtAuth.ValidateSessionToken(token, testSecret)
	assert.Error(t, err)
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	jwtAuth := NewJWTAuthenticator("brainbin", "brainbin")

	token, err := jwtAuth.GenerateSessionToken("user-123", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = jwtAuth.ValidateSessionToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateSessionTokenWrongAudience(t *testing.T) {
	issuing := NewJWTAuthenticator("other-app", "other-app")
	validating := NewJWTAuthenticator("brainbin", "brainbin")

	token, err := issuing.GenerateSessionToken("user-123", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = validating.ValidateSessionToken(token, testSecret)
	assert.Error(t, err)
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	jwtAuth := NewJWTAuthenticator("brainbin", "brainbin")

	_, err := jwtAuth.ValidateSessionToken("not-a-jwt", testSecret)
	assert.Error(t, err)
}
