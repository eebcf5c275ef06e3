package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
	"github.com/smartpurse/pos-terminal/pkg/pagination"
)

// CatalogService handles inventory listing and administration.
type CatalogService struct {
	inventory repository.InventoryRepository
	validate  *validator.Validate
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(inventory repository.InventoryRepository) *CatalogService {
	return &CatalogService{
		inventory: inventory,
		validate:  validator.New(),
	}
}

// ListInventory fetches the store's catalog, filters it by the search term
// (case-insensitive, against the item name) and windows it to the page.
func (s *CatalogService) ListInventory(ctx context.Context, session entity.Session, search string, params *pagination.Params) (*pagination.Result[entity.CatalogItem], error) {
	items, err := s.inventory.ListByStore(ctx, session.StoreID())
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]entity.CatalogItem, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return pagination.Paginate(items, params), nil
}

// ItemsByCategory returns the catalog items of one category, with an
// optional name search, for the sell panel.
func (s *CatalogService) ItemsByCategory(ctx context.Context, session entity.Session, category, search string) ([]entity.CatalogItem, error) {
	items, err := s.inventory.ListByStore(ctx, session.StoreID())
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	filtered := make([]entity.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// SaveItemInput is the add/edit form of an inventory item.
type SaveItemInput struct {
	Name        string  `validate:"required"`
	Description string
	Rate        float64 `validate:"required,gt=0"`
	Category    string  `validate:"required"`
	VATPercent  int64   `validate:"oneof=0 16"`
}

func (s *CatalogService) toEntity(session entity.Session, input *SaveItemInput) *entity.CatalogItem {
	return &entity.CatalogItem{
		Name:        input.Name,
		Description: input.Description,
		Rate:        decimal.NewFromFloat(input.Rate),
		Category:    input.Category,
		VATPercent:  input.VATPercent,
		StoreID:     session.StoreID(),
	}
}

// CreateItem validates the form and adds a catalog item.
func (s *CatalogService) CreateItem(ctx context.Context, session entity.Session, input *SaveItemInput) (*entity.CatalogItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.NewValidationError("Invalid inventory item: " + err.Error())
	}
	return s.inventory.Create(ctx, s.toEntity(session, input))
}

// UpdateItem validates the form and replaces an existing catalog item.
func (s *CatalogService) UpdateItem(ctx context.Context, session entity.Session, id int64, input *SaveItemInput) (*entity.CatalogItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.NewValidationError("Invalid inventory item: " + err.Error())
	}
	item := s.toEntity(session, input)
	item.ID = id
	return s.inventory.Update(ctx, item)
}

// DeleteItem removes a catalog item.
func (s *CatalogService) DeleteItem(ctx context.Context, id int64) error {
	return s.inventory.Delete(ctx, id)
}
