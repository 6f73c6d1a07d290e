package queries

import (
	"errors"

	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/guard"
)

var ErrGetUniqueLocationsByRoleQueryIsNotConstructed = errors.New(
	"GetUniqueLocationsByRoleQuery must be created via NewGetUniqueLocationsByRoleQuery constructor",
)

// GetUniqueLocationsByRoleQuery lists the distinct locations where members of a role work.
type GetUniqueLocationsByRoleQuery struct {
	role staff.Role

	guard guard.ConstructorGuard
}

func NewGetUniqueLocationsByRoleQuery(role string) (GetUniqueLocationsByRoleQuery, error) {
	parsed, err := staff.ParseRole(role)
	if err != nil {
		return GetUniqueLocationsByRoleQuery{}, err
	}

	return GetUniqueLocationsByRoleQuery{
		role:  parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetUniqueLocationsByRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUniqueLocationsByRoleQueryIsNotConstructed)
}

func (q GetUniqueLocationsByRoleQuery) Role() staff.Role {
	return q.role
}
