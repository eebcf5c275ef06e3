package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
)

// UserService handles staff administration for one store.
type UserService struct {
	users    repository.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{
		users:    users,
		validate: validator.New(),
	}
}

// List returns the users belonging to the session's store. The endpoint
// returns users across stores, so scoping happens here.
func (s *UserService) List(ctx context.Context, session entity.Session) ([]entity.User, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	scoped := make([]entity.User, 0, len(all))
	for _, u := range all {
		if u.StoreID == session.StoreID() {
			scoped = append(scoped, u)
		}
	}
	return scoped, nil
}

// SaveUserInput is the add/edit form of a staff member.
type SaveUserInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string
	Role  string `validate:"oneof=admin staff"`
}

// Create validates the form and adds a user to the session's store.
func (s *UserService) Create(ctx context.Context, session entity.Session, input *SaveUserInput) (*entity.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.NewValidationError("Invalid user: " + err.Error())
	}

	return s.users.Create(ctx, &entity.User{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Role:    enum.ParseRole(input.Role),
		StoreID: session.StoreID(),
	})
}

// Update validates the form and replaces an existing user record.
func (s *UserService) Update(ctx context.Context, session entity.Session, id int64, input *SaveUserInput) (*entity.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.NewValidationError("Invalid user: " + err.Error())
	}

	return s.users.Update(ctx, &entity.User{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Role:    enum.ParseRole(input.Role),
		StoreID: session.StoreID(),
	})
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
