package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
	"github.com/smartpurse/pos-terminal/pkg/logger"
)

// SubmitState is the lifecycle of one cart submission.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	Submitting
	Submitted
	SubmitFailed
)

func (s SubmitState) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case SubmitFailed:
		return "submit_failed"
	default:
		return "idle"
	}
}

// BillingService turns carts into sales and settles pending ones. The
// backend is the source of truth for sale records; this service only
// creates them and flips their payment status.
type BillingService struct {
	sales repository.SaleRepository
	cart  *CartService
	log   *logger.Logger

	mu             sync.Mutex
	state          SubmitState
	idempotencyKey string
}

// NewBillingService creates a billing service over the given sales endpoint.
func NewBillingService(sales repository.SaleRepository, cart *CartService, log *logger.Logger) *BillingService {
	return &BillingService{
		sales: sales,
		cart:  cart,
		log:   log,
		state: SubmitIdle,
	}
}

// State returns the state of the latest submission.
func (s *BillingService) State() SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset abandons the current bill: the cart is emptied, a fresh bill number
// is issued and the idempotency key is discarded.
func (s *BillingService) Reset() {
	s.mu.Lock()
	s.idempotencyKey = ""
	s.state = SubmitIdle
	s.mu.Unlock()

	s.cart.Clear()
}

// beginSubmit validates locally and takes the in-flight slot. The returned
// snapshot is what will be sent; concurrent cart edits do not affect it.
func (s *BillingService) beginSubmit() ([]entity.CartLine, decimal.Decimal, decimal.Decimal, string, string, error) {
	lines, total, vat, billNumber := s.cart.snapshot()
	if len(lines) == 0 {
		return nil, decimal.Zero, decimal.Zero, "", "", apperror.ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Submitting {
		return nil, decimal.Zero, decimal.Zero, "", "", apperror.ErrSubmissionInProgress
	}
	// One key per bill: a retry after failure reuses it, so the backend can
	// deduplicate if the first attempt did land.
	if s.idempotencyKey == "" {
		s.idempotencyKey = uuid.New().String()
	}
	s.state = Submitting
	return lines, total, vat, billNumber, s.idempotencyKey, nil
}

func (s *BillingService) finishSubmit(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.state = Submitted
		s.idempotencyKey = ""
	} else {
		s.state = SubmitFailed
	}
}

// Submit sends the current cart to the backend as a new unpaid sale. On
// success the cart is cleared and a fresh bill number issued. On failure
// both the cart and the bill number are preserved so the cashier can retry
// the same bill.
func (s *BillingService) Submit(ctx context.Context, session entity.Session, method enum.PaymentMethod) (*entity.Sale, error) {
	lines, total, vat, billNumber, key, err := s.beginSubmit()
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		BillNumber:    billNumber,
		ServedBy:      session.ServedBy(),
		PaymentStatus: enum.PaymentStatusUnpaid,
		Total:         total,
		PaymentMethod: method,
		StoreID:       session.StoreID(),
		VATAmount:     vat,
		Items:         make([]entity.SaleItem, 0, len(lines)),
	}
	for _, l := range lines {
		sale.Items = append(sale.Items, entity.SaleItem{
			Name:     l.Item.Name,
			Rate:     l.Item.Rate,
			Quantity: l.Quantity,
			VAT:      l.Item.VATPercent,
		})
	}

	created, err := s.sales.Create(ctx, sale, key)
	if err != nil {
		s.finishSubmit(false)
		s.log.Error("sale_submit", err, map[string]any{"bill_number": billNumber})
		return nil, err
	}

	s.finishSubmit(true)
	s.cart.completeSubmit(lines)
	s.log.Info("sale_submit", map[string]any{
		"bill_number": created.BillNumber,
		"sale_id":     created.ID,
		"total":       created.Total.String(),
	})
	return created, nil
}

// PendingSales returns the unpaid sales served by this session's user,
// freshly fetched from the backend.
func (s *BillingService) PendingSales(ctx context.Context, session entity.Session) ([]entity.Sale, error) {
	return s.listByStatus(ctx, session, enum.PaymentStatusUnpaid)
}

// PaidSales returns the settled sales served by this session's user, used
// to reprint receipts.
func (s *BillingService) PaidSales(ctx context.Context, session entity.Session) ([]entity.Sale, error) {
	return s.listByStatus(ctx, session, enum.PaymentStatusPaid)
}

func (s *BillingService) listByStatus(ctx context.Context, session entity.Session, status enum.PaymentStatus) ([]entity.Sale, error) {
	all, err := s.sales.ListByStore(ctx, session.StoreID())
	if err != nil {
		s.log.Error("sale_list", err, map[string]any{"store_id": session.StoreID()})
		return nil, err
	}

	filtered := make([]entity.Sale, 0, len(all))
	for _, sale := range all {
		if sale.PaymentStatus == status && sale.ServedBy == session.ServedBy() {
			filtered = append(filtered, sale)
		}
	}
	return filtered, nil
}

// CheckoutPending marks a pending sale paid, preserving every other field.
// A conflicting update (someone settled the same sale first) is surfaced to
// the caller, never absorbed.
func (s *BillingService) CheckoutPending(ctx context.Context, sale entity.Sale) (*entity.Sale, error) {
	if sale.ID == 0 {
		return nil, apperror.NewValidationError("Sale has no id")
	}

	sale.PaymentStatus = enum.PaymentStatusPaid
	updated, err := s.sales.Update(ctx, &sale)
	if err != nil {
		s.log.Error("sale_checkout", err, map[string]any{"sale_id": sale.ID})
		return nil, err
	}

	s.log.Info("sale_checkout", map[string]any{
		"sale_id":     updated.ID,
		"bill_number": updated.BillNumber,
	})
	return updated, nil
}

// SalesSummary is the dashboard snapshot shown when the sell panel opens.
type SalesSummary struct {
	PaidTotal    decimal.Decimal
	PaidCount    int
	PendingCount int
}

// Summary aggregates the store's sales into the dashboard counters.
func (s *BillingService) Summary(ctx context.Context, session entity.Session) (*SalesSummary, error) {
	all, err := s.sales.ListByStore(ctx, session.StoreID())
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{PaidTotal: decimal.Zero}
	for _, sale := range all {
		if sale.PaymentStatus == enum.PaymentStatusPaid {
			summary.PaidTotal = summary.PaidTotal.Add(sale.Total)
			summary.PaidCount++
		} else {
			summary.PendingCount++
		}
	}
	return summary, nil
}
