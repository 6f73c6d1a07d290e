package commands

import (
	"errors"

	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/guard"
)

var ErrEnsureManagerCommandIsNotConstructed = errors.New(
	"EnsureManagerCommand must be created via NewEnsureManagerCommand constructor",
)

// EnsureManagerCommand seeds the first manager account so a fresh install can log in.
type EnsureManagerCommand struct {
	register RegisterStaffCommand

	guard guard.ConstructorGuard
}

func NewEnsureManagerCommand(name, email, password, location string) (EnsureManagerCommand, error) {
	register, err := NewRegisterStaffCommand(staff.RoleManager, name, email, password, staff.RoleManager, "", location)
	if err != nil {
		return EnsureManagerCommand{}, err
	}

	return EnsureManagerCommand{
		register: register,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EnsureManagerCommand) Validate() error {
	return c.guard.Validate(ErrEnsureManagerCommandIsNotConstructed)
}

func (c EnsureManagerCommand) Register() RegisterStaffCommand {
	return c.register
}
