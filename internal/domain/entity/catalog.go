package entity

import "github.com/shopspring/decimal"

// CatalogItem is one sellable item from the store's inventory. The backend
// owns the record; the terminal treats it as immutable input.
type CatalogItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"item"`
	Description string          `json:"description,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	Category    string          `json:"category"`
	VATPercent  int64           `json:"vat"`
	StoreID     int64           `json:"storeid"`
}

// Category is a named grouping of catalog items within one store.
type Category struct {
	ID      int64  `json:"id"`
	Name    string `json:"category"`
	StoreID int64  `json:"storeid"`
}
