package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store identity printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string
	Phone     string
	Email     string
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name     string
	Rate     decimal.Decimal
	Quantity int
}

// Total returns the extended price of the item.
func (i ReceiptItem) Total() decimal.Decimal {
	return i.Rate.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Receipt is a value object representing a printable receipt. It is not
// persisted anywhere; it is composed from a cart or a stored sale at print
// time.
type Receipt struct {
	Header        ReceiptHeader
	BillNumber    string
	Date          string
	ServedBy      string
	PaymentMethod string
	Items         []ReceiptItem
	Total         decimal.Decimal
}
