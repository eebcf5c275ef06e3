package repository

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
)

// SaleRepository defines the operations the remote sales endpoint offers.
type SaleRepository interface {
	// Create persists a new sale and returns the stored record with its id.
	// The idempotency key covers retries of the same submission.
	Create(ctx context.Context, sale *entity.Sale, idempotencyKey string) (*entity.Sale, error)
	// Update replaces the full sale record identified by sale.ID.
	Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)
	// ListByStore returns every sale recorded for the store. Payment-status
	// and served-by filtering happens client-side.
	ListByStore(ctx context.Context, storeID int64) ([]entity.Sale, error)
}
