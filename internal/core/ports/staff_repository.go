package ports

import (
	"context"
	"errors"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
)

// ErrEmailTaken is returned by StaffRepository.Add for a duplicate email.
var ErrEmailTaken = errors.New("email is already registered")

// StaffRepository persists staff members.
type StaffRepository interface {
	Add(ctx context.Context, aggregate *staff.Staff) error

	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetByEmail matches the lower-cased email.
	GetByEmail(ctx context.Context, email string) (*staff.Staff, error)

	// HasRole reports whether at least one member with role exists.
	HasRole(ctx context.Context, role staff.Role) (bool, error)
}
