package commands

import (
	"context"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"

	"go.uber.org/zap"
)

type RegisterStaffCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     ports.PasswordHasher
	cache      ports.LocationCache
	logger     *zap.Logger
}

func NewRegisterStaffCommandHandler(
	uowFactory StaffUoWFactory,
	hasher ports.PasswordHasher,
	cache ports.LocationCache,
	logger *zap.Logger,
) RegisterStaffCommandHandler {
	return RegisterStaffCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		cache:      cache,
		logger:     logger.With(zap.String("component", "register-staff")),
	}
}

// Handle stores the new member and drops the cached locations of its role.
func (h *RegisterStaffCommandHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	member, err := staff.NewStaff(
		cmd.StaffID(),
		cmd.Name(),
		cmd.Email(),
		hash,
		cmd.Role(),
		cmd.ContactInfo(),
		cmd.Location(),
		time.Now(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if err = h.cache.Invalidate(ctx, member.Role()); err != nil {
		h.logger.Warn("failed to invalidate location cache",
			zap.Stringer("role", member.Role()), zap.Error(err))
	}

	return member.ID(), nil
}
