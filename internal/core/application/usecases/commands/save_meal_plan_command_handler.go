package commands

import (
	"context"
)

type SaveMealPlanCommandHandler struct {
	uowFactory PatientUoWFactory
}

func NewSaveMealPlanCommandHandler(uowFactory PatientUoWFactory) SaveMealPlanCommandHandler {
	return SaveMealPlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ObjectNotFoundError when the patient does not exist.
func (h *SaveMealPlanCommandHandler) Handle(ctx context.Context, cmd SaveMealPlanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PatientRepository()
	if _, err := repo.Get(ctx, cmd.Plan().PatientID()); err != nil {
		return err
	}

	if err := repo.SaveMealPlan(ctx, cmd.Plan()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
