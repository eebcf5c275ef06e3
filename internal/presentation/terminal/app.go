// Package terminal is the interactive console front end of the POS. Panels
// are a closed enum; input is read line by line and every action goes
// through the application services.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/smartpurse/pos-terminal/internal/application/service"
	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
)

// Services bundles everything the terminal needs.
type Services struct {
	Auth       *service.AuthService
	Cart       *service.CartService
	Billing    *service.BillingService
	Catalog    *service.CatalogService
	Categories *service.CategoryService
	Users      *service.UserService
	Printer    *service.PrinterService
	Stores     repository.StoreRepository
}

// App drives the terminal session: sign in, panel menu, dispatch.
type App struct {
	svc Services

	in  *bufio.Scanner
	out io.Writer

	session  entity.Session
	signedIn bool
}

// NewApp creates the terminal app reading from in and writing to out.
func NewApp(svc Services, in io.Reader, out io.Writer) *App {
	return &App{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run is the main loop. It returns when the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		if !a.signedIn {
			if !a.login(ctx) {
				return nil
			}
		}

		// A lapsed token forces a fresh sign-in before any panel opens.
		if a.svc.Auth.SessionExpired(a.session) {
			a.printf("Session expired, please sign in again.\n")
			a.signedIn = false
			continue
		}

		panel, quit := a.selectPanel()
		if quit {
			return nil
		}
		a.dispatch(ctx, panel)
	}
}

// selectPanel shows the menu of panels visible to the signed-in role.
func (a *App) selectPanel() (enum.Panel, bool) {
	visible := make([]enum.Panel, 0)
	for _, p := range enum.AllPanels() {
		if p.VisibleTo(a.session.User.Role) {
			visible = append(visible, p)
		}
	}

	a.printf("\n=== %s (%s) ===\n", a.session.User.Name, a.session.User.Role)
	for i, p := range visible {
		a.printf("  %d. %s\n", i+1, p.Title())
	}
	landing := a.svc.Auth.LandingPanel(a.session)
	a.printf("  q. Quit (blank opens %s)\n", landing.Title())

	for {
		choice, ok := a.prompt("Panel")
		if !ok || choice == "q" {
			return enum.PanelSell, true
		}
		if choice == "" {
			return landing, false
		}
		if n, err := parseIndex(choice, len(visible)); err == nil {
			return visible[n], false
		}
		a.printf("Pick a number between 1 and %d.\n", len(visible))
	}
}

func (a *App) dispatch(ctx context.Context, panel enum.Panel) {
	switch panel {
	case enum.PanelSell:
		a.sellPanel(ctx)
	case enum.PanelPending:
		a.pendingPanel(ctx)
	case enum.PanelReprint:
		a.reprintPanel(ctx)
	case enum.PanelInventory:
		a.inventoryPanel(ctx)
	case enum.PanelCategories:
		a.categoriesPanel(ctx)
	case enum.PanelUsers:
		a.usersPanel(ctx)
	case enum.PanelStore:
		a.storePanel(ctx)
	case enum.PanelCalculator:
		a.calculatorPanel()
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line; ok is false when input has ended.
func (a *App) prompt(label string) (string, bool) {
	a.printf("%s> ", label)
	if !a.in.Scan() {
		return "", false
	}
	return trimInput(a.in.Text()), true
}

// showError renders a service error the way a cashier should see it.
func (a *App) showError(err error) {
	a.printf("! %s\n", apperror.GetAppError(err).Message)
}
