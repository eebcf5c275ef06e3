package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
)

// SaleAPI talks to the /sales endpoint.
type SaleAPI struct {
	client *Client
}

// NewSaleAPI creates the sales endpoint client.
func NewSaleAPI(client *Client) *SaleAPI {
	return &SaleAPI{client: client}
}

var _ repository.SaleRepository = (*SaleAPI)(nil)

// Create persists a new sale and returns the stored record.
func (a *SaleAPI) Create(ctx context.Context, sale *entity.Sale, idempotencyKey string) (*entity.Sale, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers[IdempotencyKeyHeader] = idempotencyKey
	}

	var created entity.Sale
	if err := a.client.post(ctx, "/sales", headers, sale, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the full sale record.
func (a *SaleAPI) Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	var updated entity.Sale
	if err := a.client.put(ctx, fmt.Sprintf("/sales/%d", sale.ID), sale, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListByStore returns every sale recorded for the store.
func (a *SaleAPI) ListByStore(ctx context.Context, storeID int64) ([]entity.Sale, error) {
	query := url.Values{"storeId": {strconv.FormatInt(storeID, 10)}}

	var sales []entity.Sale
	if err := a.client.get(ctx, "/sales", query, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}
