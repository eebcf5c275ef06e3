package repository

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
)

// CategoryRepository defines the operations the remote categories endpoint offers.
type CategoryRepository interface {
	ListByStore(ctx context.Context, storeID int64) ([]entity.Category, error)
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}
