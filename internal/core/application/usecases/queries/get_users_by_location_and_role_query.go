package queries

import (
	"errors"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/guard"
)

var ErrGetUsersByLocationAndRoleQueryIsNotConstructed = errors.New(
	"GetUsersByLocationAndRoleQuery must be created via NewGetUsersByLocationAndRoleQuery constructor",
)

// GetUsersByLocationAndRoleQuery lists the members of a role working at one location.
type GetUsersByLocationAndRoleQuery struct { //nolint:recvcheck //using for validation
	role     staff.Role
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewGetUsersByLocationAndRoleQuery(role, location string) (GetUsersByLocationAndRoleQuery, error) {
	q := GetUsersByLocationAndRoleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(q.setRole(role), q.setLocation(location)); err != nil {
		return GetUsersByLocationAndRoleQuery{}, err
	}

	return q, nil
}

func (q GetUsersByLocationAndRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersByLocationAndRoleQueryIsNotConstructed)
}

func (q GetUsersByLocationAndRoleQuery) Role() staff.Role {
	return q.role
}

func (q GetUsersByLocationAndRoleQuery) Location() kernel.Location {
	return q.location
}

func (q *GetUsersByLocationAndRoleQuery) setRole(role string) error {
	parsed, err := staff.ParseRole(role)
	if err != nil {
		return err
	}
	q.role = parsed
	return nil
}

func (q *GetUsersByLocationAndRoleQuery) setLocation(location string) error {
	parsed, err := kernel.NewLocation(location)
	if err != nil {
		return err
	}
	q.location = parsed
	return nil
}
