package terminal

import (
	"context"

	"github.com/smartpurse/pos-terminal/internal/application/service"
)

// login runs the sign-in dialog. It returns false when input ends.
func (a *App) login(ctx context.Context) bool {
	a.printf("=== SmartPurse POS ===\n")

	for {
		email, ok := a.prompt("Email (or 'reset' for a password reset)")
		if !ok {
			return false
		}

		if email == "reset" {
			a.passwordReset(ctx)
			continue
		}

		password, ok := a.prompt("Password")
		if !ok {
			return false
		}

		session, err := a.svc.Auth.Login(ctx, &service.LoginInput{Email: email, Password: password})
		if err != nil {
			a.showError(err)
			continue
		}

		a.session = *session
		a.signedIn = true
		a.printf("Welcome, %s.\n", session.User.Name)
		return true
	}
}

func (a *App) passwordReset(ctx context.Context) {
	email, ok := a.prompt("Account email")
	if !ok {
		return
	}
	if err := a.svc.Auth.RequestPasswordReset(ctx, email); err != nil {
		a.showError(err)
		return
	}
	a.printf("If the account exists, a reset email is on its way.\n")
}
