package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
)

// CategoryAPI talks to the /categories endpoint.
type CategoryAPI struct {
	client *Client
}

// NewCategoryAPI creates the categories endpoint client.
func NewCategoryAPI(client *Client) *CategoryAPI {
	return &CategoryAPI{client: client}
}

var _ repository.CategoryRepository = (*CategoryAPI)(nil)

// ListByStore returns the store's categories.
func (a *CategoryAPI) ListByStore(ctx context.Context, storeID int64) ([]entity.Category, error) {
	// The categories endpoint takes the store filter in lowercase.
	query := url.Values{"storeid": {strconv.FormatInt(storeID, 10)}}

	var categories []entity.Category
	if err := a.client.get(ctx, "/categories", query, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create adds a category.
func (a *CategoryAPI) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	var created entity.Category
	if err := a.client.post(ctx, "/categories", nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update renames a category.
func (a *CategoryAPI) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	var updated entity.Category
	if err := a.client.put(ctx, fmt.Sprintf("/categories/%d", category.ID), category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a category.
func (a *CategoryAPI) Delete(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
