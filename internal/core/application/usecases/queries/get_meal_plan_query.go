package queries

import (
	"errors"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/errs"
	"hospitalfood/internal/pkg/guard"
)

var ErrGetMealPlanQueryIsNotConstructed = errors.New(
	"GetMealPlanQuery must be created via NewGetMealPlanQuery constructor",
)

// GetMealPlanQuery reads one patient's plan for all sessions.
type GetMealPlanQuery struct {
	patientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMealPlanQuery(patientID kernel.UUID) (GetMealPlanQuery, error) {
	if err := patientID.Validate(); err != nil {
		return GetMealPlanQuery{}, errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}

	return GetMealPlanQuery{
		patientID: patientID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetMealPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetMealPlanQueryIsNotConstructed)
}

func (q GetMealPlanQuery) PatientID() kernel.UUID {
	return q.patientID
}

// MealPlanView has an empty list for every session without food.
type MealPlanView struct {
	PatientID   kernel.UUID
	PatientName string
	Morning     []FoodItem
	Afternoon   []FoodItem
	Night       []FoodItem
}
