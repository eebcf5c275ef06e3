package terminal

import "context"

// categoriesPanel is the category admin screen.
func (a *App) categoriesPanel(ctx context.Context) {
	sortAsc := true

	for {
		search, ok := a.prompt("Search categories (blank for all)")
		if !ok {
			return
		}

		categories, err := a.svc.Categories.List(ctx, a.session, search, sortAsc)
		if err != nil {
			a.showError(err)
			return
		}

		a.printf("\nCategories\n")
		for _, c := range categories {
			a.printf("  [%d] %s\n", c.ID, c.Name)
		}

		a.printf("Commands: [a]dd, [r]ename, [d]elete, [s]ort order, [b]ack\n")
		cmd, ok := a.prompt("Categories")
		if !ok || cmd == "b" {
			return
		}

		switch cmd {
		case "a":
			name, ok := a.prompt("New category name")
			if !ok {
				return
			}
			created, err := a.svc.Categories.Create(ctx, a.session, name)
			if err != nil {
				a.showError(err)
				continue
			}
			a.printf("Added %s (id %d).\n", created.Name, created.ID)
		case "r":
			idStr, ok := a.prompt("Category id")
			if !ok {
				return
			}
			id, err := parseID(idStr)
			if err != nil {
				a.printf("Invalid id.\n")
				continue
			}
			name, ok := a.prompt("New name")
			if !ok {
				return
			}
			renamed, err := a.svc.Categories.Rename(ctx, a.session, id, name)
			if err != nil {
				a.showError(err)
				continue
			}
			a.printf("Renamed to %s.\n", renamed.Name)
		case "d":
			idStr, ok := a.prompt("Category id")
			if !ok {
				return
			}
			id, err := parseID(idStr)
			if err != nil {
				a.printf("Invalid id.\n")
				continue
			}
			if err := a.svc.Categories.Delete(ctx, id); err != nil {
				a.showError(err)
				continue
			}
			a.printf("Category %d deleted.\n", id)
		case "s":
			sortAsc = !sortAsc
		}
	}
}
