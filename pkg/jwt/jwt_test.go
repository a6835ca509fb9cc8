package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	tok, err := GenerateToken(secret, SubjectAdmin, TypeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, tok)
	require.NoError(t, err)
	assert.Equal(t, SubjectAdmin, claims.Subject)
	assert.False(t, ShouldRotate(claims, time.Minute))
	assert.True(t, ShouldRotate(claims, 2*time.Hour))
}

func TestParseTokenRejects(t *testing.T) {
	secret := []byte("s3cret")

	tok, err := GenerateToken(secret, SubjectAdmin, "refresh", time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(secret, TypeAccess, tok)
	require.ErrorIs(t, err, ErrTokenType)

	tok, err = GenerateToken(secret, SubjectAdmin, TypeAccess, time.Hour)
	require.NoError(t, err)
	_, err = ParseToken([]byte("other"), TypeAccess, tok)
	require.Error(t, err)

	expired, err := GenerateToken(secret, SubjectAdmin, TypeAccess, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TypeAccess, expired)
	require.Error(t, err)
}
