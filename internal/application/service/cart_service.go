package service

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/pkg/billno"
)

// CartService owns the in-progress cart of one billing session together
// with its bill number. Network submissions may be in flight while the
// cashier keeps editing, so all access is serialised here.
type CartService struct {
	mu         sync.Mutex
	cart       *entity.Cart
	billNumber string
	gen        *billno.Generator
}

// NewCartService creates an empty cart with a freshly issued bill number.
func NewCartService(gen *billno.Generator) *CartService {
	return &CartService{
		cart:       entity.NewCart(),
		billNumber: gen.Next(),
		gen:        gen,
	}
}

// AddItem adds one unit of the item to the cart. Adding an item that is
// already in the cart increments its quantity.
func (s *CartService) AddItem(item entity.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(item)
}

// RemoveItem removes the cart line for the item id; absent ids are a no-op.
func (s *CartService) RemoveItem(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(itemID)
}

// Clear empties the cart and issues a fresh bill number.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.billNumber = s.gen.Next()
}

// Total recomputes the cart total from current contents.
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// VATAmount returns the VAT included in the current total.
func (s *CartService) VATAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.VATAmount()
}

// Lines returns a snapshot of the cart lines in insertion order.
func (s *CartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// IsEmpty reports whether the cart has no lines.
func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// BillNumber returns the bill number of the current session.
func (s *CartService) BillNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.billNumber
}

// completeSubmit removes the submitted quantities and issues a fresh bill
// number. Lines added while the submission was in flight are kept; they
// belong to the new bill.
func (s *CartService) completeSubmit(lines []entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range lines {
		s.cart.Deduct(l.Item.ID, l.Quantity)
	}
	s.billNumber = s.gen.Next()
}

// snapshot atomically captures everything a submission needs.
func (s *CartService) snapshot() (lines []entity.CartLine, total, vat decimal.Decimal, billNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(), s.cart.Total(), s.cart.VATAmount(), s.billNumber
}
