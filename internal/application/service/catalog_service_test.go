package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
	"github.com/smartpurse/pos-terminal/pkg/pagination"
)

type fakeInventoryRepo struct {
	items   []entity.CatalogItem
	listErr error

	created *entity.CatalogItem
	updated *entity.CatalogItem
	deleted []int64
	nextID  int64
}

func (r *fakeInventoryRepo) ListByStore(_ context.Context, _ int64) ([]entity.CatalogItem, error) {
	return r.items, r.listErr
}

func (r *fakeInventoryRepo) Create(_ context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error) {
	r.nextID++
	stored := *item
	stored.ID = r.nextID
	r.created = &stored
	return &stored, nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error) {
	stored := *item
	r.updated = &stored
	return &stored, nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func sampleCatalog() []entity.CatalogItem {
	return []entity.CatalogItem{
		{ID: 1, Name: "Chapati", Rate: decimal.NewFromInt(20), Category: "Food", VATPercent: 16, StoreID: 3},
		{ID: 2, Name: "Soda", Rate: decimal.NewFromInt(70), Category: "Drinks", VATPercent: 16, StoreID: 3},
		{ID: 3, Name: "Mandazi", Rate: decimal.NewFromInt(15), Category: "Food", VATPercent: 0, StoreID: 3},
	}
}

func TestCatalogService_ListInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("search filters by item name, case-insensitive", func(t *testing.T) {
		svc := NewCatalogService(&fakeInventoryRepo{items: sampleCatalog()})

		result, err := svc.ListInventory(ctx, testSession(), "soda", &pagination.Params{})

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Soda", result.Items[0].Name)
		assert.Equal(t, 1, result.Pagination.Total)
	})

	t.Run("windows results to the requested page", func(t *testing.T) {
		svc := NewCatalogService(&fakeInventoryRepo{items: sampleCatalog()})

		result, err := svc.ListInventory(ctx, testSession(), "", &pagination.Params{Page: 2, PerPage: 2})

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Mandazi", result.Items[0].Name)
		assert.Equal(t, 3, result.Pagination.Total)
	})
}

func TestCatalogService_ItemsByCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(&fakeInventoryRepo{items: sampleCatalog()})

	food, err := svc.ItemsByCategory(ctx, testSession(), "Food", "")
	require.NoError(t, err)
	require.Len(t, food, 2)

	filtered, err := svc.ItemsByCategory(ctx, testSession(), "Food", "man")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Mandazi", filtered[0].Name)
}

func TestCatalogService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("valid item is stored with the session's store id", func(t *testing.T) {
		repo := &fakeInventoryRepo{}
		svc := NewCatalogService(repo)

		item, err := svc.CreateItem(ctx, testSession(), &SaveItemInput{
			Name:       "Chips",
			Rate:       100,
			Category:   "Food",
			VATPercent: 16,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), item.StoreID)
		assert.True(t, decimal.NewFromInt(100).Equal(item.Rate))
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		svc := NewCatalogService(&fakeInventoryRepo{})

		_, err := svc.CreateItem(ctx, testSession(), &SaveItemInput{Rate: 10, Category: "Food"})

		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("unsupported vat rate is rejected", func(t *testing.T) {
		svc := NewCatalogService(&fakeInventoryRepo{})

		_, err := svc.CreateItem(ctx, testSession(), &SaveItemInput{
			Name: "Chips", Rate: 10, Category: "Food", VATPercent: 8,
		})

		assert.True(t, apperror.IsValidation(err))
	})
}

func TestCatalogService_UpdateItem(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewCatalogService(repo)

	item, err := svc.UpdateItem(context.Background(), testSession(), 5, &SaveItemInput{
		Name: "Chapati", Rate: 25, Category: "Food", VATPercent: 16,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ID)
	assert.True(t, decimal.NewFromInt(25).Equal(repo.updated.Rate))
}

func TestCatalogService_DeleteItem(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewCatalogService(repo)

	require.NoError(t, svc.DeleteItem(context.Background(), 9))
	assert.Equal(t, []int64{9}, repo.deleted)
}
