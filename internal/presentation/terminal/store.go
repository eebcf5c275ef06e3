package terminal

import "context"

// storePanel shows the store profile printed on receipt headers.
func (a *App) storePanel(ctx context.Context) {
	store, err := a.svc.Stores.GetByID(ctx, a.session.StoreID())
	if err != nil {
		a.showError(err)
		return
	}
	if store == nil {
		a.printf("No store profile found for this account.\n")
		return
	}

	a.printf("\n%s\n", store.Name)
	a.printf("  Phone:    %s\n", store.Phone)
	a.printf("  Email:    %s\n", store.Email)
	if store.TypeOfBusiness != "" {
		a.printf("  Business: %s\n", store.TypeOfBusiness)
	}
	if store.Website != "" {
		a.printf("  Website:  %s\n", store.Website)
	}
	if store.SubscriptionPlan != "" {
		a.printf("  Plan:     %s (expires %s)\n", store.SubscriptionPlan, store.ExpiryDate)
	}
}
