package utils

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "unit-test-secret")
	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-123"})
	signed, err := other.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("user-123", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenUsesHS256(t *testing.T) {
	token, err := GenerateToken("user-123", time.Hour)
	require.NoError(t, err)

	parsed, _, err := new(jwt.Parser).ParseUnverified(token, &Claims{})
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Method.Alg())
}

func TestTokenPayloadFieldIsID(t *testing.T) {
	// The auth middleware contract hinges on the claim being named "id".
	token, err := GenerateToken("user-123", time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = new(jwt.Parser).ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["id"])
}
