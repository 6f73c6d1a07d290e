package commands

import (
	"errors"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/pkg/guard"
)

var ErrSaveMealPlanCommandIsNotConstructed = errors.New(
	"SaveMealPlanCommand must be created via NewSaveMealPlanCommand constructor",
)

// SaveMealPlanCommand replaces a patient's meal plan for every session.
type SaveMealPlanCommand struct {
	plan *patient.MealPlan

	guard guard.ConstructorGuard
}

func NewSaveMealPlanCommand(patientID kernel.UUID, meals map[kernel.Session][]kernel.FoodItem) (SaveMealPlanCommand, error) {
	plan, err := patient.NewMealPlan(patientID, meals)
	if err != nil {
		return SaveMealPlanCommand{}, err
	}

	return SaveMealPlanCommand{
		plan:  plan,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SaveMealPlanCommand) Validate() error {
	return c.guard.Validate(ErrSaveMealPlanCommandIsNotConstructed)
}

func (c SaveMealPlanCommand) Plan() *patient.MealPlan {
	return c.plan
}
