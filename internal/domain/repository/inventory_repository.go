package repository

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
)

// InventoryRepository defines the operations the remote inventory endpoint offers.
type InventoryRepository interface {
	ListByStore(ctx context.Context, storeID int64) ([]entity.CatalogItem, error)
	Create(ctx context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error)
	Update(ctx context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error)
	Delete(ctx context.Context, id int64) error
}
