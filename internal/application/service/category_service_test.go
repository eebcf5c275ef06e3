package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
)

type fakeCategoryRepo struct {
	categories []entity.Category
	created    *entity.Category
	updated    *entity.Category
	deleted    []int64
	nextID     int64
}

func (r *fakeCategoryRepo) ListByStore(_ context.Context, _ int64) ([]entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) (*entity.Category, error) {
	r.nextID++
	stored := *category
	stored.ID = r.nextID
	r.created = &stored
	return &stored, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) (*entity.Category, error) {
	stored := *category
	r.updated = &stored
	return &stored, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()
	repo := &fakeCategoryRepo{categories: []entity.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Drinks"},
		{ID: 3, Name: "Snacks"},
	}}
	svc := NewCategoryService(repo)

	t.Run("sorts ascending by name", func(t *testing.T) {
		categories, err := svc.List(ctx, testSession(), "", true)

		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Drinks", categories[0].Name)
		assert.Equal(t, "Snacks", categories[2].Name)
	})

	t.Run("sorts descending by name", func(t *testing.T) {
		categories, err := svc.List(ctx, testSession(), "", false)

		require.NoError(t, err)
		assert.Equal(t, "Snacks", categories[0].Name)
	})

	t.Run("filters by search term", func(t *testing.T) {
		categories, err := svc.List(ctx, testSession(), "dri", true)

		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Drinks", categories[0].Name)
	})
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("trims the name and stores it", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		svc := NewCategoryService(repo)

		category, err := svc.Create(ctx, testSession(), "  Drinks ")

		require.NoError(t, err)
		assert.Equal(t, "Drinks", category.Name)
		assert.Equal(t, int64(3), category.StoreID)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		svc := NewCategoryService(&fakeCategoryRepo{})

		_, err := svc.Create(ctx, testSession(), "   ")

		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("duplicate name is rejected regardless of case", func(t *testing.T) {
		repo := &fakeCategoryRepo{categories: []entity.Category{{ID: 1, Name: "Drinks"}}}
		svc := NewCategoryService(repo)

		_, err := svc.Create(ctx, testSession(), "drinks")

		assert.True(t, apperror.IsConflict(err))
	})
}

func TestCategoryService_Rename(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	category, err := svc.Rename(context.Background(), testSession(), 4, "Beverages")

	require.NoError(t, err)
	assert.Equal(t, int64(4), category.ID)
	assert.Equal(t, "Beverages", repo.updated.Name)
}

func TestCategoryService_Delete(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, []int64{2}, repo.deleted)
}
