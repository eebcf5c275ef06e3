package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smartpurse/pos-terminal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": "cashier@example.com",
		"role":  "staff",
		"exp":   exp.Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestParse(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	claims, err := token.Parse(signedToken(t, exp))

	require.NoError(t, err)
	assert.Equal(t, "cashier@example.com", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.True(t, claims.ExpiresAt.Time.Equal(exp))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := token.Parse("not-a-token")
	assert.Error(t, err)
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	assert.False(t, token.IsExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.True(t, token.IsExpired(signedToken(t, now.Add(-time.Hour)), now))
	// Garbage has no expiry claim, so it is left to the backend to reject.
	assert.False(t, token.IsExpired("garbage", now))
}
