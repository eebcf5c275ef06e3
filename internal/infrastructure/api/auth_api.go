package api

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
)

// AuthAPI talks to the authentication routes of the /users endpoint.
type AuthAPI struct {
	client *Client
}

// NewAuthAPI creates the auth endpoint client.
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

var _ repository.AuthRepository = (*AuthAPI)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Session struct {
		AccessToken string `json:"access_token"`
	} `json:"session"`
	User entity.User `json:"user"`
}

// Login exchanges credentials for a session and installs the access token
// on the shared client.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp loginResponse
	err := a.client.post(ctx, "/users/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if apperror.IsKind(err, apperror.KindUnauthorized) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	a.client.SetAccessToken(resp.Session.AccessToken)

	return &entity.Session{
		User:        resp.User,
		AccessToken: resp.Session.AccessToken,
	}, nil
}

type resetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset asks the backend to start a reset flow.
func (a *AuthAPI) RequestPasswordReset(ctx context.Context, email string) error {
	return a.client.post(ctx, "/users/reset-password", nil, resetRequest{Email: email}, nil)
}
