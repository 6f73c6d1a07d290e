package staff

import (
	"fmt"

	"hospitalfood/internal/pkg/errs"
)

// Role decides which dashboards and operations a staff member can reach.
type Role int

const (
	RoleUnknown Role = iota
	RoleManager
	RolePantryStaff
	RoleDelivery
)

var roleNames = map[Role]string{
	RoleManager:     "Manager",
	RolePantryStaff: "PantryStaff",
	RoleDelivery:    "Delivery",
}

func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not one of Manager, PantryStaff, Delivery", s),
	)
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// CanRegister reports whether a member with this role may create accounts of the target role.
// Managers register anyone; pantry staff register delivery personnel only.
func (r Role) CanRegister(target Role) bool {
	switch r {
	case RoleManager:
		return target.Validate() == nil
	case RolePantryStaff:
		return target == RoleDelivery
	default:
		return false
	}
}

func (r Role) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
