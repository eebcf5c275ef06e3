package entity

import (
	"github.com/shopspring/decimal"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
)

// SaleItem is one persisted line item of a sale, as stored by the backend.
type SaleItem struct {
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
	Quantity int             `json:"quantity"`
	VAT      int64           `json:"vat"`
}

// Total returns the extended price of the item.
func (i SaleItem) Total() decimal.Decimal {
	return i.Rate.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is the backend-persisted record a submitted cart becomes. The
// terminal creates it (unpaid) and later marks it paid; the backend owns it.
type Sale struct {
	ID            int64              `json:"id,omitempty"`
	BillNumber    string             `json:"billNumber"`
	ServedBy      string             `json:"servedBy"`
	PaymentStatus enum.PaymentStatus `json:"paymentStatus"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	StoreID       int64              `json:"storeId"`
	VATAmount     decimal.Decimal    `json:"vatAmount"`
	Items         []SaleItem         `json:"items"`
}
