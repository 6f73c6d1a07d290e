package commands

import (
	"errors"
	"maps"
	"slices"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/pkg/guard"
)

var ErrCreatePatientCommandIsNotConstructed = errors.New(
	"CreatePatientCommand must be created via NewCreatePatientCommand constructor",
)

type CreatePatientCommand struct {
	patientID kernel.UUID
	profile   patient.Profile

	guard guard.ConstructorGuard
}

// NewCreatePatientCommand assigns the new patient's ID. Profile rules are enforced by the aggregate.
func NewCreatePatientCommand(profile patient.Profile) CreatePatientCommand {
	profile.Diseases = slices.Clone(profile.Diseases)
	profile.Allergies = slices.Clone(profile.Allergies)
	profile.Others = maps.Clone(profile.Others)

	return CreatePatientCommand{
		patientID: kernel.NewUUID(),
		profile:   profile,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c CreatePatientCommand) Validate() error {
	return c.guard.Validate(ErrCreatePatientCommandIsNotConstructed)
}

func (c CreatePatientCommand) PatientID() kernel.UUID {
	return c.patientID
}

func (c CreatePatientCommand) Profile() patient.Profile {
	return c.profile
}
