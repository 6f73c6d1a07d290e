package queries

import (
	"errors"
	"strings"

	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/pkg/guard"
)

var ErrGetStaffQueryIsNotConstructed = errors.New(
	"GetStaffQuery must be created via NewGetStaffQuery constructor",
)

// GetStaffQuery lists staff members, optionally of one role.
// Pantry staff only ever see delivery personnel.
type GetStaffQuery struct {
	role *staff.Role

	guard guard.ConstructorGuard
}

// NewGetStaffQuery narrows role to what actor may see. A blank role means every role.
func NewGetStaffQuery(role string, actor staff.Role) (GetStaffQuery, error) {
	var wanted *staff.Role
	if role = strings.TrimSpace(role); role != "" {
		parsed, err := staff.ParseRole(role)
		if err != nil {
			return GetStaffQuery{}, err
		}
		wanted = &parsed
	}

	switch actor {
	case staff.RoleManager:
	case staff.RolePantryStaff:
		if wanted != nil && *wanted != staff.RoleDelivery {
			return GetStaffQuery{}, ports.ErrAccessDenied
		}
		delivery := staff.RoleDelivery
		wanted = &delivery
	default:
		return GetStaffQuery{}, ports.ErrAccessDenied
	}

	return GetStaffQuery{
		role:  wanted,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffQueryIsNotConstructed)
}

// Role returns nil when every role is listed.
func (q GetStaffQuery) Role() *staff.Role {
	return q.role
}
