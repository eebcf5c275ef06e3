package service

import (
	"context"
	"sort"
	"strings"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
)

// CategoryService handles category listing and administration.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List fetches the store's categories, filters them by the search term and
// sorts them by name, ascending or descending.
func (s *CategoryService) List(ctx context.Context, session entity.Session, search string, sortAsc bool) ([]entity.Category, error) {
	categories, err := s.categories.ListByStore(ctx, session.StoreID())
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]entity.Category, 0, len(categories))
		for _, c := range categories {
			if strings.Contains(strings.ToLower(c.Name), needle) {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}

	sort.Slice(categories, func(i, j int) bool {
		if sortAsc {
			return categories[i].Name < categories[j].Name
		}
		return categories[i].Name > categories[j].Name
	})
	return categories, nil
}

// Create adds a category. The name must be non-empty and unused.
func (s *CategoryService) Create(ctx context.Context, session entity.Session, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewValidationError("Category name is required")
	}

	existing, err := s.categories.ListByStore(ctx, session.StoreID())
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, apperror.NewConflictError("Category with this name already exists")
		}
	}

	return s.categories.Create(ctx, &entity.Category{
		Name:    name,
		StoreID: session.StoreID(),
	})
}

// Rename changes a category's name.
func (s *CategoryService) Rename(ctx context.Context, session entity.Session, id int64, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewValidationError("Category name is required")
	}

	return s.categories.Update(ctx, &entity.Category{
		ID:      id,
		Name:    name,
		StoreID: session.StoreID(),
	})
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}
