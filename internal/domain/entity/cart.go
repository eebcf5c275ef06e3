package entity

import "github.com/shopspring/decimal"

// CartLine is one cart row: a catalog item and how many of it are selected.
type CartLine struct {
	Item     CatalogItem
	Quantity int
}

// Total returns the extended price of the line.
func (l CartLine) Total() decimal.Decimal {
	return l.Item.Rate.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the in-progress selection for one billing session, in insertion
// order. There is at most one line per catalog item id; the mutators below
// maintain that invariant. A Cart is not safe for concurrent use on its own;
// the cart service serialises access.
type Cart struct {
	lines []CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the item. If a line for the same item id already
// exists its quantity is incremented, otherwise a new line is appended.
func (c *Cart) AddItem(item CatalogItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// RemoveItem deletes the line matching the item id. Removing an absent id is
// a no-op.
func (c *Cart) RemoveItem(itemID int64) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Deduct removes qty units from the line matching the item id, dropping the
// line once nothing remains. Absent ids are a no-op.
func (c *Cart) Deduct(itemID int64, qty int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity -= qty
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total recomputes the cart total from the current lines on every call, so
// it can never go stale.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// VATAmount returns the VAT already included in the cart total. Rates are
// VAT-inclusive, so a line taxed at v% carries total*v/(100+v) of VAT.
func (c *Cart) VATAmount() decimal.Decimal {
	vat := decimal.Zero
	for _, l := range c.lines {
		v := decimal.NewFromInt(l.Item.VATPercent)
		if v.IsZero() {
			continue
		}
		share := l.Total().Mul(v).Div(decimal.NewFromInt(100).Add(v))
		vat = vat.Add(share)
	}
	return vat.Round(2)
}
