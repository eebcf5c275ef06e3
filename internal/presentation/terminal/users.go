package terminal

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/application/service"
)

// usersPanel is the staff admin screen.
func (a *App) usersPanel(ctx context.Context) {
	for {
		users, err := a.svc.Users.List(ctx, a.session)
		if err != nil {
			a.showError(err)
			return
		}

		a.printf("\nStaff\n")
		for _, u := range users {
			a.printf("  [%d] %-20s %-28s %s\n", u.ID, u.Name, u.Email, u.Role)
		}

		a.printf("Commands: [a]dd, [e]dit, [d]elete, [b]ack\n")
		cmd, ok := a.prompt("Users")
		if !ok || cmd == "b" {
			return
		}

		switch cmd {
		case "a":
			input, ok := a.readUserForm()
			if !ok {
				return
			}
			user, err := a.svc.Users.Create(ctx, a.session, input)
			if err != nil {
				a.showError(err)
				continue
			}
			a.printf("Added %s (id %d).\n", user.Name, user.ID)
		case "e":
			idStr, ok := a.prompt("User id")
			if !ok {
				return
			}
			id, err := parseID(idStr)
			if err != nil {
				a.printf("Invalid id.\n")
				continue
			}
			input, ok := a.readUserForm()
			if !ok {
				return
			}
			user, err := a.svc.Users.Update(ctx, a.session, id, input)
			if err != nil {
				a.showError(err)
				continue
			}
			a.printf("Updated %s.\n", user.Name)
		case "d":
			idStr, ok := a.prompt("User id")
			if !ok {
				return
			}
			id, err := parseID(idStr)
			if err != nil {
				a.printf("Invalid id.\n")
				continue
			}
			if err := a.svc.Users.Delete(ctx, id); err != nil {
				a.showError(err)
				continue
			}
			a.printf("User %d deleted.\n", id)
		}
	}
}

func (a *App) readUserForm() (*service.SaveUserInput, bool) {
	name, ok := a.prompt("Name")
	if !ok {
		return nil, false
	}
	email, ok := a.prompt("Email")
	if !ok {
		return nil, false
	}
	phone, ok := a.prompt("Phone")
	if !ok {
		return nil, false
	}
	role, ok := a.prompt("Role (admin/staff)")
	if !ok {
		return nil, false
	}
	return &service.SaveUserInput{
		Name:  name,
		Email: email,
		Phone: phone,
		Role:  role,
	}, true
}
