package commands

import (
	"context"

	"hospitalfood/internal/core/domain/model/staff"
)

type EnsureManagerCommandHandler struct {
	uowFactory StaffUoWFactory
	register   RegisterStaffCommandHandler
}

func NewEnsureManagerCommandHandler(uowFactory StaffUoWFactory, register RegisterStaffCommandHandler) EnsureManagerCommandHandler {
	return EnsureManagerCommandHandler{
		uowFactory: uowFactory,
		register:   register,
	}
}

// Handle creates the manager unless one already exists. It reports whether an account was created.
func (h *EnsureManagerCommandHandler) Handle(ctx context.Context, cmd EnsureManagerCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	exists, err := h.uowFactory.Create().StaffRepository().HasRole(ctx, staff.RoleManager)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err = h.register.Handle(ctx, cmd.Register()); err != nil {
		return false, err
	}

	return true, nil
}
