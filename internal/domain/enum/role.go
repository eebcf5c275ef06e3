package enum

import (
	"encoding/json"
	"strings"
)

// Role represents a user's role in the store
type Role int

const (
	RoleStaff      Role = 0
	RoleAdmin      Role = 1
	RoleSuperAdmin Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "superadmin"
	default:
		return "staff"
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = ParseRole(str)
	return nil
}

// ParseRole maps a role value to a Role; unknown values fall back to staff,
// the least privileged role.
func ParseRole(s string) Role {
	switch strings.ToLower(s) {
	case "admin":
		return RoleAdmin
	case "superadmin", "super-admin":
		return RoleSuperAdmin
	default:
		return RoleStaff
	}
}
