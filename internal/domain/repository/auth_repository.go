package repository

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
)

// AuthRepository defines the authentication operations of the users endpoint.
type AuthRepository interface {
	// Login exchanges credentials for a session carrying the access token
	// and the signed-in user.
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	// RequestPasswordReset asks the backend to start a reset flow for the
	// given email.
	RequestPasswordReset(ctx context.Context, email string) error
}
