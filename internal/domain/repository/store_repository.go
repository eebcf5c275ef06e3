package repository

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
)

// StoreRepository defines the operations the remote stores endpoint offers.
type StoreRepository interface {
	// GetByID returns the store profile, or a not-found error when the
	// backend has no record for the id.
	GetByID(ctx context.Context, storeID int64) (*entity.Store, error)
}
