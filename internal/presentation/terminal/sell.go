package terminal

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/application/service"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
)

// sellPanel is the billing screen: browse the catalog, build the cart and
// submit the bill.
func (a *App) sellPanel(ctx context.Context) {
	if summary, err := a.svc.Billing.Summary(ctx, a.session); err == nil {
		a.printf("Today: %d paid (%s %s), %d pending\n",
			summary.PaidCount, service.Currency, summary.PaidTotal.StringFixed(2), summary.PendingCount)
	}

	for {
		a.showCart()
		a.printf("Commands: [a]dd item, [r]emove line, [p]ay now, [h]old bill, [c]lear, [b]ack\n")
		cmd, ok := a.prompt("Sell")
		if !ok || cmd == "b" {
			return
		}

		switch cmd {
		case "a":
			a.addToCart(ctx)
		case "r":
			a.removeFromCart()
		case "p":
			a.payNow(ctx)
		case "h":
			a.holdBill(ctx)
		case "c":
			a.svc.Billing.Reset()
			a.printf("Cart cleared, new bill #%s.\n", a.svc.Cart.BillNumber())
		}
	}
}

func (a *App) showCart() {
	lines := a.svc.Cart.Lines()
	a.printf("\nBill #%s\n", a.svc.Cart.BillNumber())
	if len(lines) == 0 {
		a.printf("  (cart is empty)\n")
		return
	}
	for _, l := range lines {
		a.printf("  %s x %d = %s\n", l.Item.Name, l.Quantity, l.Total().StringFixed(2))
	}
	a.printf("  TOTAL %s %s (VAT %s)\n",
		service.Currency, a.svc.Cart.Total().StringFixed(2), a.svc.Cart.VATAmount().StringFixed(2))
}

func (a *App) addToCart(ctx context.Context) {
	categories, err := a.svc.Categories.List(ctx, a.session, "", true)
	if err != nil {
		a.showError(err)
		return
	}
	if len(categories) == 0 {
		a.printf("No categories yet.\n")
		return
	}

	for i, c := range categories {
		a.printf("  %d. %s\n", i+1, c.Name)
	}
	choice, ok := a.prompt("Category")
	if !ok {
		return
	}
	n, err := parseIndex(choice, len(categories))
	if err != nil {
		a.printf("Unknown category.\n")
		return
	}

	search, ok := a.prompt("Search (blank for all)")
	if !ok {
		return
	}
	items, err := a.svc.Catalog.ItemsByCategory(ctx, a.session, categories[n].Name, search)
	if err != nil {
		a.showError(err)
		return
	}
	if len(items) == 0 {
		a.printf("No items match.\n")
		return
	}

	for i, item := range items {
		a.printf("  %d. %s  %s %s\n", i+1, item.Name, service.Currency, item.Rate.StringFixed(2))
	}
	choice, ok = a.prompt("Item")
	if !ok {
		return
	}
	n, err = parseIndex(choice, len(items))
	if err != nil {
		a.printf("Unknown item.\n")
		return
	}

	a.svc.Cart.AddItem(items[n])
}

func (a *App) removeFromCart() {
	lines := a.svc.Cart.Lines()
	if len(lines) == 0 {
		a.printf("Cart is empty.\n")
		return
	}
	for i, l := range lines {
		a.printf("  %d. %s x %d\n", i+1, l.Item.Name, l.Quantity)
	}
	choice, ok := a.prompt("Remove line")
	if !ok {
		return
	}
	n, err := parseIndex(choice, len(lines))
	if err != nil {
		a.printf("Unknown line.\n")
		return
	}
	a.svc.Cart.RemoveItem(lines[n].Item.ID)
}

// submitCart runs the shared submit half of hold and pay-now.
func (a *App) submitCart(ctx context.Context) (*entity.Sale, bool) {
	method, ok := a.pickPaymentMethod()
	if !ok {
		return nil, false
	}

	sale, err := a.svc.Billing.Submit(ctx, a.session, method)
	if err != nil {
		a.showError(err)
		if a.svc.Billing.State() == service.SubmitFailed {
			a.printf("Bill #%s kept; fix the problem and submit again.\n", a.svc.Cart.BillNumber())
		}
		return nil, false
	}
	return sale, true
}

// holdBill submits the cart as an unpaid sale to settle later from the
// Pending panel.
func (a *App) holdBill(ctx context.Context) {
	sale, ok := a.submitCart(ctx)
	if !ok {
		return
	}
	a.printf("Bill #%s saved as pending (total %s %s).\n",
		sale.BillNumber, service.Currency, sale.Total.StringFixed(2))
}

// payNow submits the cart and settles it in one step, then prints the
// receipt.
func (a *App) payNow(ctx context.Context) {
	sale, ok := a.submitCart(ctx)
	if !ok {
		return
	}

	paid, err := a.svc.Billing.CheckoutPending(ctx, *sale)
	if err != nil {
		a.showError(err)
		a.printf("Bill #%s saved as pending; settle it from the Pending panel.\n", sale.BillNumber)
		return
	}

	a.printf("Bill #%s paid (total %s %s).\n",
		paid.BillNumber, service.Currency, paid.Total.StringFixed(2))
	a.printReceipt(ctx, paid)
}

func (a *App) pickPaymentMethod() (enum.PaymentMethod, bool) {
	choice, ok := a.prompt("Payment method (cash/mpesa/card)")
	if !ok {
		return enum.PaymentMethodCash, false
	}
	method, err := enum.ParsePaymentMethod(choice)
	if err != nil {
		a.printf("Unknown payment method, using cash.\n")
		return enum.PaymentMethodCash, true
	}
	return method, true
}
