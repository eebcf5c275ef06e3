package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
	"github.com/smartpurse/pos-terminal/pkg/logger"
	"github.com/smartpurse/pos-terminal/pkg/token"
)

// AuthService signs the terminal in and tracks session validity.
type AuthService struct {
	auth     repository.AuthRepository
	validate *validator.Validate
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(auth repository.AuthRepository, log *logger.Logger) *AuthService {
	return &AuthService{
		auth:     auth,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// LoginInput is the sign-in form.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login validates credentials locally, then exchanges them with the backend.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*entity.Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.NewValidationError("Email and password are required")
	}

	session, err := s.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		s.log.Error("login_failed", err, map[string]any{"email": input.Email})
		return nil, err
	}

	s.log.Info("login", map[string]any{
		"email": session.User.Email,
		"role":  session.User.Role.String(),
	})
	return session, nil
}

// SessionExpired reports whether the session's access token has lapsed.
func (s *AuthService) SessionExpired(session entity.Session) bool {
	return token.IsExpired(session.AccessToken, s.now())
}

// LandingPanel is the screen a freshly signed-in user starts on.
func (s *AuthService) LandingPanel(session entity.Session) enum.Panel {
	if session.User.Role == enum.RoleAdmin || session.User.Role == enum.RoleSuperAdmin {
		return enum.PanelInventory
	}
	return enum.PanelSell
}

// RequestPasswordReset starts the backend's reset flow for an email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperror.NewValidationError("Email is required")
	}
	return s.auth.RequestPasswordReset(ctx, email)
}
