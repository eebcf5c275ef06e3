package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
)

// StoreAPI talks to the /stores endpoint.
type StoreAPI struct {
	client *Client
}

// NewStoreAPI creates the stores endpoint client.
func NewStoreAPI(client *Client) *StoreAPI {
	return &StoreAPI{client: client}
}

var _ repository.StoreRepository = (*StoreAPI)(nil)

// GetByID returns the store profile. The endpoint answers with an array;
// an empty array means the store does not exist.
func (a *StoreAPI) GetByID(ctx context.Context, storeID int64) (*entity.Store, error) {
	query := url.Values{"storeId": {strconv.FormatInt(storeID, 10)}}

	var stores []entity.Store
	if err := a.client.get(ctx, "/stores", query, &stores); err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return nil, nil
	}
	return &stores[0], nil
}
