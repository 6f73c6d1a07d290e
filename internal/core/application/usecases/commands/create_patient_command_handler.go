package commands

import (
	"context"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/patient"
)

type CreatePatientCommandHandler struct {
	uowFactory PatientUoWFactory
}

func NewCreatePatientCommandHandler(uowFactory PatientUoWFactory) CreatePatientCommandHandler {
	return CreatePatientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreatePatientCommandHandler) Handle(ctx context.Context, cmd CreatePatientCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	p, err := patient.NewPatient(cmd.PatientID(), cmd.Profile(), time.Now())
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

	if err = uow.PatientRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
