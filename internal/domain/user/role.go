package user

import "fmt"

// Role drives every disclosure and write-authorization decision.
// An unrecognized role gets RoleNone and no access at all.
type Role string

const (
	RoleNone          Role = ""
	RoleAdministrator Role = "administrator"
	RoleClinician     Role = "clinician"
	RoleFrontDesk     Role = "frontdesk"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleClinician, RoleFrontDesk:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole maps stored or user-supplied role names to a Role,
// failing closed on anything it does not recognize.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return RoleNone, fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}
