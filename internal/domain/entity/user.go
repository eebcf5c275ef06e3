package entity

import "github.com/smartpurse/pos-terminal/internal/domain/enum"

// User is a member of a store's staff.
type User struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Role    enum.Role `json:"role"`
	StoreID int64     `json:"storeid"`
}

// Session is the authenticated identity a signed-in terminal operates
// under. It is passed explicitly into every service that needs it; nothing
// reads ambient session state.
type Session struct {
	User        User
	AccessToken string
}

// ServedBy is the identity recorded on sales created in this session.
func (s Session) ServedBy() string {
	return s.User.Name
}

// StoreID is the store the session is scoped to.
func (s Session) StoreID() int64 {
	return s.User.StoreID
}
