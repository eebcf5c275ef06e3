package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
)

// InventoryAPI talks to the /inventory endpoint.
type InventoryAPI struct {
	client *Client
}

// NewInventoryAPI creates the inventory endpoint client.
func NewInventoryAPI(client *Client) *InventoryAPI {
	return &InventoryAPI{client: client}
}

var _ repository.InventoryRepository = (*InventoryAPI)(nil)

// ListByStore returns the store's catalog.
func (a *InventoryAPI) ListByStore(ctx context.Context, storeID int64) ([]entity.CatalogItem, error) {
	query := url.Values{"storeId": {strconv.FormatInt(storeID, 10)}}

	var items []entity.CatalogItem
	if err := a.client.get(ctx, "/inventory", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create adds a catalog item.
func (a *InventoryAPI) Create(ctx context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error) {
	var created entity.CatalogItem
	if err := a.client.post(ctx, "/inventory", nil, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a catalog item.
func (a *InventoryAPI) Update(ctx context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error) {
	var updated entity.CatalogItem
	if err := a.client.put(ctx, fmt.Sprintf("/inventory/%d", item.ID), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a catalog item.
func (a *InventoryAPI) Delete(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/inventory/%d", id))
}
