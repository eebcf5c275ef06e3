package terminal

import (
	"context"
	"strconv"

	"github.com/smartpurse/pos-terminal/internal/application/service"
	"github.com/smartpurse/pos-terminal/pkg/pagination"
)

// inventoryPanel is the catalog admin screen.
func (a *App) inventoryPanel(ctx context.Context) {
	page := 1

	for {
		search, ok := a.prompt("Search inventory (blank for all)")
		if !ok {
			return
		}

		result, err := a.svc.Catalog.ListInventory(ctx, a.session, search, &pagination.Params{Page: page, PerPage: 10})
		if err != nil {
			a.showError(err)
			return
		}

		a.printf("\nInventory (page %d of %d, %d items)\n",
			result.Pagination.CurrentPage, result.Pagination.TotalPages, result.Pagination.Total)
		for _, item := range result.Items {
			a.printf("  [%d] %-20s %s %s  %s  VAT %d%%\n",
				item.ID, item.Name, service.Currency, item.Rate.StringFixed(2), item.Category, item.VATPercent)
		}

		a.printf("Commands: [n]ext page, [p]rev page, [a]dd, [e]dit, [d]elete, [b]ack\n")
		cmd, ok := a.prompt("Inventory")
		if !ok || cmd == "b" {
			return
		}

		switch cmd {
		case "n":
			if result.Pagination.HasNext {
				page++
			}
		case "p":
			if result.Pagination.HasPrev {
				page--
			}
		case "a":
			a.addInventoryItem(ctx)
		case "e":
			a.editInventoryItem(ctx)
		case "d":
			a.deleteInventoryItem(ctx)
		}
	}
}

// readItemForm collects the add/edit item fields.
func (a *App) readItemForm(ctx context.Context) (*service.SaveItemInput, bool) {
	name, ok := a.prompt("Name")
	if !ok {
		return nil, false
	}
	description, ok := a.prompt("Description")
	if !ok {
		return nil, false
	}
	rateStr, ok := a.prompt("Rate")
	if !ok {
		return nil, false
	}
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		a.printf("Rate must be a number.\n")
		return nil, false
	}

	categories, err := a.svc.Categories.List(ctx, a.session, "", true)
	if err != nil {
		a.showError(err)
		return nil, false
	}
	for i, c := range categories {
		a.printf("  %d. %s\n", i+1, c.Name)
	}
	choice, ok := a.prompt("Category")
	if !ok {
		return nil, false
	}
	n, err := parseIndex(choice, len(categories))
	if err != nil {
		a.printf("Unknown category.\n")
		return nil, false
	}

	vatStr, ok := a.prompt("VAT percent (0 or 16)")
	if !ok {
		return nil, false
	}
	vat, err := strconv.ParseInt(vatStr, 10, 64)
	if err != nil {
		a.printf("VAT must be a number.\n")
		return nil, false
	}

	return &service.SaveItemInput{
		Name:        name,
		Description: description,
		Rate:        rate,
		Category:    categories[n].Name,
		VATPercent:  vat,
	}, true
}

func (a *App) addInventoryItem(ctx context.Context) {
	input, ok := a.readItemForm(ctx)
	if !ok {
		return
	}
	item, err := a.svc.Catalog.CreateItem(ctx, a.session, input)
	if err != nil {
		a.showError(err)
		return
	}
	a.printf("Added %s (id %d).\n", item.Name, item.ID)
}

func (a *App) editInventoryItem(ctx context.Context) {
	idStr, ok := a.prompt("Item id")
	if !ok {
		return
	}
	id, err := parseID(idStr)
	if err != nil {
		a.printf("Invalid id.\n")
		return
	}
	input, ok := a.readItemForm(ctx)
	if !ok {
		return
	}
	item, err := a.svc.Catalog.UpdateItem(ctx, a.session, id, input)
	if err != nil {
		a.showError(err)
		return
	}
	a.printf("Updated %s.\n", item.Name)
}

func (a *App) deleteInventoryItem(ctx context.Context) {
	idStr, ok := a.prompt("Item id")
	if !ok {
		return
	}
	id, err := parseID(idStr)
	if err != nil {
		a.printf("Invalid id.\n")
		return
	}
	if err := a.svc.Catalog.DeleteItem(ctx, id); err != nil {
		a.showError(err)
		return
	}
	a.printf("Item %d deleted.\n", id)
}
