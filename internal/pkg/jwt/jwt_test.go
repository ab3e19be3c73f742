package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign("user-42", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	SetSecret("secret-one")
	token, err := Sign("user-42", time.Hour)
	require.NoError(t, err)

	SetSecret("secret-two")
	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	SetSecret("test-secret")
	token, err := Sign("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}
