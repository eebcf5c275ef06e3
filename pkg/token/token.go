// Package token inspects the access tokens issued by the backend. The
// terminal never verifies signatures (the backend holds the key); it only
// reads claims to know when a session must be re-established.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims the terminal cares about.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Parse decodes an access token without verifying its signature.
func Parse(accessToken string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresAt returns the token expiry, or the zero time when absent.
func ExpiresAt(accessToken string) time.Time {
	claims, err := Parse(accessToken)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// IsExpired reports whether the token carries an expiry in the past.
// Tokens without an expiry claim are treated as still valid; the backend
// rejects them with 401 if it disagrees.
func IsExpired(accessToken string, now time.Time) bool {
	exp := ExpiresAt(accessToken)
	return !exp.IsZero() && exp.Before(now)
}
