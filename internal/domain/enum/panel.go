package enum

import "fmt"

// Panel identifies a screen of the terminal. Panels are a closed set
// dispatched by value, never looked up by arbitrary string keys.
type Panel int

const (
	PanelSell Panel = iota
	PanelPending
	PanelReprint
	PanelInventory
	PanelCategories
	PanelUsers
	PanelStore
	PanelCalculator
)

var panelNames = [...]string{
	"sell",
	"pending",
	"reprint",
	"inventory",
	"categories",
	"users",
	"store",
	"calculator",
}

func (p Panel) String() string {
	if int(p) < 0 || int(p) >= len(panelNames) {
		return "unknown"
	}
	return panelNames[p]
}

// Title returns the human-facing panel heading.
func (p Panel) Title() string {
	switch p {
	case PanelSell:
		return "Sell"
	case PanelPending:
		return "Pending Bills"
	case PanelReprint:
		return "Reprint Receipts"
	case PanelInventory:
		return "Inventory"
	case PanelCategories:
		return "Categories"
	case PanelUsers:
		return "Users"
	case PanelStore:
		return "Store Profile"
	case PanelCalculator:
		return "Calculator"
	default:
		return "Unknown"
	}
}

// AllPanels lists every panel in menu order.
func AllPanels() []Panel {
	return []Panel{
		PanelSell, PanelPending, PanelReprint, PanelInventory,
		PanelCategories, PanelUsers, PanelStore, PanelCalculator,
	}
}

// ParsePanel maps a menu key to a Panel.
func ParsePanel(s string) (Panel, error) {
	for i, name := range panelNames {
		if name == s {
			return Panel(i), nil
		}
	}
	return PanelSell, fmt.Errorf("unknown panel %q", s)
}

// VisibleTo reports whether the panel is available to the given role.
// Staff get the billing panels; the back-office panels need admin.
func (p Panel) VisibleTo(role Role) bool {
	switch p {
	case PanelSell, PanelPending, PanelReprint, PanelCalculator:
		return true
	default:
		return role == RoleAdmin || role == RoleSuperAdmin
	}
}
