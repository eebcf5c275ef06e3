package api

import (
	"context"
	"fmt"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
)

// UserAPI talks to the /users endpoint.
type UserAPI struct {
	client *Client
}

// NewUserAPI creates the users endpoint client.
func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

var _ repository.UserRepository = (*UserAPI)(nil)

// List returns all users. The endpoint has no store filter; callers scope
// the result to their store.
func (a *UserAPI) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := a.client.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create adds a user.
func (a *UserAPI) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	var created entity.User
	if err := a.client.post(ctx, "/users", nil, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a user record.
func (a *UserAPI) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	var updated entity.User
	if err := a.client.put(ctx, fmt.Sprintf("/users/%d", user.ID), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user.
func (a *UserAPI) Delete(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/users/%d", id))
}
