package terminal

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/application/service"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
)

// pendingPanel lists this cashier's unpaid bills and settles them.
func (a *App) pendingPanel(ctx context.Context) {
	sales, err := a.svc.Billing.PendingSales(ctx, a.session)
	if err != nil {
		a.showError(err)
		return
	}
	if len(sales) == 0 {
		a.printf("No pending bills.\n")
		return
	}

	a.listSales(sales)
	choice, ok := a.prompt("Checkout bill (blank to go back)")
	if !ok || choice == "" {
		return
	}
	n, err := parseIndex(choice, len(sales))
	if err != nil {
		a.printf("Unknown bill.\n")
		return
	}

	paid, err := a.svc.Billing.CheckoutPending(ctx, sales[n])
	if err != nil {
		a.showError(err)
		return
	}
	a.printf("Bill #%s settled.\n", paid.BillNumber)

	a.printReceipt(ctx, paid)
}

// reprintPanel re-renders receipts for already settled bills. The printout
// comes from the sale's stored items, so it matches the original receipt.
func (a *App) reprintPanel(ctx context.Context) {
	sales, err := a.svc.Billing.PaidSales(ctx, a.session)
	if err != nil {
		a.showError(err)
		return
	}
	if len(sales) == 0 {
		a.printf("No settled bills to reprint.\n")
		return
	}

	a.listSales(sales)
	choice, ok := a.prompt("Reprint bill (blank to go back)")
	if !ok || choice == "" {
		return
	}
	n, err := parseIndex(choice, len(sales))
	if err != nil {
		a.printf("Unknown bill.\n")
		return
	}

	a.printReceipt(ctx, &sales[n])
}

func (a *App) listSales(sales []entity.Sale) {
	for i, s := range sales {
		a.printf("  %d. #%s  %s %s  (%s)\n",
			i+1, s.BillNumber, service.Currency, s.Total.StringFixed(2), s.PaymentMethod)
	}
}

func (a *App) printReceipt(ctx context.Context, sale *entity.Sale) {
	if _, err := a.svc.Printer.PrintSale(ctx, sale); err != nil {
		a.showError(err)
		return
	}
	a.printf("Receipt printed for bill #%s.\n", sale.BillNumber)
}
