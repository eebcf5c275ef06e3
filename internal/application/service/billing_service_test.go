package service

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
	"github.com/smartpurse/pos-terminal/pkg/logger"
)

// fakeSaleRepo records calls and replays canned responses.
type fakeSaleRepo struct {
	createErr   error
	createCalls int
	createdKeys []string
	lastCreated *entity.Sale

	updateErr  error
	lastUpdate *entity.Sale

	sales   []entity.Sale
	listErr error

	nextID int64
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale, idempotencyKey string) (*entity.Sale, error) {
	r.createCalls++
	r.createdKeys = append(r.createdKeys, idempotencyKey)
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	stored := *sale
	stored.ID = r.nextID
	r.lastCreated = &stored
	return &stored, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	stored := *sale
	r.lastUpdate = &stored
	return &stored, nil
}

func (r *fakeSaleRepo) ListByStore(_ context.Context, _ int64) ([]entity.Sale, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.sales, nil
}

// blockingSaleRepo parks Create until released, to exercise the in-flight
// submission guard.
type blockingSaleRepo struct {
	started chan struct{}
	release chan struct{}
}

func (r *blockingSaleRepo) Create(_ context.Context, sale *entity.Sale, _ string) (*entity.Sale, error) {
	close(r.started)
	<-r.release
	stored := *sale
	stored.ID = 1
	return &stored, nil
}

func (r *blockingSaleRepo) Update(_ context.Context, sale *entity.Sale) (*entity.Sale, error) {
	return sale, nil
}

func (r *blockingSaleRepo) ListByStore(_ context.Context, _ int64) ([]entity.Sale, error) {
	return nil, nil
}

func testSession() entity.Session {
	return entity.Session{
		User: entity.User{
			ID:      7,
			Name:    "Wanjiku",
			Email:   "wanjiku@example.com",
			Role:    enum.RoleStaff,
			StoreID: 3,
		},
		AccessToken: "token",
	}
}

func newBillingFixture() (*BillingService, *CartService, *fakeSaleRepo) {
	repo := &fakeSaleRepo{}
	cart := newTestCart()
	log := logger.NewWithWriter("billing", io.Discard)
	return NewBillingService(repo, cart, log), cart, repo
}

func TestBillingService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart is rejected before any network call", func(t *testing.T) {
		svc, _, repo := newBillingFixture()

		_, err := svc.Submit(ctx, testSession(), enum.PaymentMethodCash)

		assert.ErrorIs(t, err, apperror.ErrEmptyCart)
		assert.Zero(t, repo.createCalls)
		assert.Equal(t, SubmitIdle, svc.State())
	})

	t.Run("success posts an unpaid sale and clears the cart", func(t *testing.T) {
		svc, cart, repo := newBillingFixture()
		cart.AddItem(chapati())
		cart.AddItem(chapati())
		cart.AddItem(soda())
		billNumber := cart.BillNumber()

		created, err := svc.Submit(ctx, testSession(), enum.PaymentMethodCash)

		require.NoError(t, err)
		assert.Equal(t, 1, repo.createCalls)
		assert.Equal(t, Submitted, svc.State())
		assert.Equal(t, billNumber, created.BillNumber)
		assert.Equal(t, "Wanjiku", created.ServedBy)
		assert.Equal(t, enum.PaymentStatusUnpaid, created.PaymentStatus)
		assert.Equal(t, int64(3), created.StoreID)
		assert.True(t, decimal.NewFromInt(110).Equal(created.Total), "got %s", created.Total)
		require.Len(t, created.Items, 2)
		assert.Equal(t, "Chapati", created.Items[0].Name)
		assert.Equal(t, 2, created.Items[0].Quantity)
		assert.Equal(t, "Soda", created.Items[1].Name)

		assert.True(t, cart.IsEmpty(), "cart must be cleared after a successful submission")
		assert.NotEqual(t, billNumber, cart.BillNumber(), "a fresh bill number must be issued")
	})

	t.Run("failure preserves the cart and the bill number", func(t *testing.T) {
		svc, cart, repo := newBillingFixture()
		repo.createErr = apperror.NewNetworkError("backend down", nil)
		cart.AddItem(soda())
		billNumber := cart.BillNumber()

		_, err := svc.Submit(ctx, testSession(), enum.PaymentMethodMpesa)

		require.Error(t, err)
		assert.Equal(t, SubmitFailed, svc.State())
		assert.False(t, cart.IsEmpty(), "cart must survive a failed submission")
		assert.Equal(t, billNumber, cart.BillNumber(), "bill number must survive a failed submission")
	})

	t.Run("retry after failure reuses the idempotency key", func(t *testing.T) {
		svc, cart, repo := newBillingFixture()
		repo.createErr = apperror.NewNetworkError("backend down", nil)
		cart.AddItem(chapati())

		_, err := svc.Submit(ctx, testSession(), enum.PaymentMethodCash)
		require.Error(t, err)

		repo.createErr = nil
		_, err = svc.Submit(ctx, testSession(), enum.PaymentMethodCash)
		require.NoError(t, err)

		require.Len(t, repo.createdKeys, 2)
		assert.Equal(t, repo.createdKeys[0], repo.createdKeys[1],
			"both attempts at the same bill must share one key")
		assert.NotEmpty(t, repo.createdKeys[0])
	})

	t.Run("a second submit while one is in flight is rejected", func(t *testing.T) {
		blocking := &blockingSaleRepo{started: make(chan struct{}), release: make(chan struct{})}
		cart := newTestCart()
		svc := NewBillingService(blocking, cart, logger.NewWithWriter("billing", io.Discard))
		cart.AddItem(chapati())

		done := make(chan error, 1)
		go func() {
			_, err := svc.Submit(ctx, testSession(), enum.PaymentMethodCash)
			done <- err
		}()

		<-blocking.started
		_, err := svc.Submit(ctx, testSession(), enum.PaymentMethodCash)
		assert.ErrorIs(t, err, apperror.ErrSubmissionInProgress)

		close(blocking.release)
		require.NoError(t, <-done)
	})

	t.Run("items added while a submission is in flight survive its success", func(t *testing.T) {
		blocking := &blockingSaleRepo{started: make(chan struct{}), release: make(chan struct{})}
		cart := newTestCart()
		svc := NewBillingService(blocking, cart, logger.NewWithWriter("billing", io.Discard))
		cart.AddItem(chapati())

		done := make(chan error, 1)
		go func() {
			_, err := svc.Submit(ctx, testSession(), enum.PaymentMethodCash)
			done <- err
		}()

		// The cashier keeps ringing up while the backend is slow.
		<-blocking.started
		cart.AddItem(soda())
		close(blocking.release)
		require.NoError(t, <-done)

		lines := cart.Lines()
		require.Len(t, lines, 1, "only the submitted snapshot may be removed")
		assert.Equal(t, "Soda", lines[0].Item.Name)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("a new bill after success gets a new idempotency key", func(t *testing.T) {
		svc, cart, repo := newBillingFixture()

		cart.AddItem(chapati())
		_, err := svc.Submit(ctx, testSession(), enum.PaymentMethodCash)
		require.NoError(t, err)

		cart.AddItem(soda())
		_, err = svc.Submit(ctx, testSession(), enum.PaymentMethodCash)
		require.NoError(t, err)

		require.Len(t, repo.createdKeys, 2)
		assert.NotEqual(t, repo.createdKeys[0], repo.createdKeys[1])
	})
}

func TestBillingService_Reset(t *testing.T) {
	svc, cart, _ := newBillingFixture()
	cart.AddItem(chapati())
	first := cart.BillNumber()

	svc.Reset()

	assert.True(t, cart.IsEmpty())
	assert.NotEqual(t, first, cart.BillNumber())
	assert.Equal(t, SubmitIdle, svc.State())
}

func TestBillingService_PendingAndPaidSales(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newBillingFixture()
	repo.sales = []entity.Sale{
		{ID: 1, BillNumber: "AAAAAA", ServedBy: "Wanjiku", PaymentStatus: enum.PaymentStatusUnpaid, Total: decimal.NewFromInt(50)},
		{ID: 2, BillNumber: "BBBBBB", ServedBy: "Wanjiku", PaymentStatus: enum.PaymentStatusPaid, Total: decimal.NewFromInt(110)},
		{ID: 3, BillNumber: "CCCCCC", ServedBy: "Otieno", PaymentStatus: enum.PaymentStatusUnpaid, Total: decimal.NewFromInt(30)},
	}

	pending, err := svc.PendingSales(ctx, testSession())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "AAAAAA", pending[0].BillNumber)

	paid, err := svc.PaidSales(ctx, testSession())
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "BBBBBB", paid[0].BillNumber)
}

func TestBillingService_CheckoutPending(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the sale paid and keeps everything else", func(t *testing.T) {
		svc, _, repo := newBillingFixture()
		sale := entity.Sale{
			ID:            9,
			BillNumber:    "DDDDDD",
			ServedBy:      "Wanjiku",
			PaymentStatus: enum.PaymentStatusUnpaid,
			Total:         decimal.NewFromInt(110),
			Items:         []entity.SaleItem{{Name: "Soda", Rate: decimal.NewFromInt(70), Quantity: 1, VAT: 16}},
		}

		updated, err := svc.CheckoutPending(ctx, sale)

		require.NoError(t, err)
		assert.Equal(t, enum.PaymentStatusPaid, updated.PaymentStatus)
		assert.Equal(t, "DDDDDD", updated.BillNumber)
		require.Len(t, repo.lastUpdate.Items, 1)
		assert.Equal(t, "Soda", repo.lastUpdate.Items[0].Name)
	})

	t.Run("update conflicts are surfaced", func(t *testing.T) {
		svc, _, repo := newBillingFixture()
		repo.updateErr = apperror.NewConflictError("sale already settled")

		_, err := svc.CheckoutPending(ctx, entity.Sale{ID: 9})

		assert.True(t, apperror.IsConflict(err))
	})

	t.Run("a sale without an id is rejected", func(t *testing.T) {
		svc, _, _ := newBillingFixture()

		_, err := svc.CheckoutPending(ctx, entity.Sale{})

		assert.True(t, apperror.IsValidation(err))
	})
}

func TestBillingService_Summary(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newBillingFixture()
	repo.sales = []entity.Sale{
		{PaymentStatus: enum.PaymentStatusPaid, Total: decimal.NewFromInt(110)},
		{PaymentStatus: enum.PaymentStatusPaid, Total: decimal.NewFromInt(40)},
		{PaymentStatus: enum.PaymentStatusUnpaid, Total: decimal.NewFromInt(30)},
	}

	summary, err := svc.Summary(ctx, testSession())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.PaidCount)
	assert.Equal(t, 1, summary.PendingCount)
	assert.True(t, decimal.NewFromInt(150).Equal(summary.PaidTotal))
}
