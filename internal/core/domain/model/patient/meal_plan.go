package patient

import (
	"errors"
	"fmt"
	"slices"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/errs"
)

// ErrMealPlanIsNotConstructed is returned when using an improperly initialized MealPlan.
var ErrMealPlanIsNotConstructed = errors.New("MealPlan must be created via NewMealPlan constructor")

// MealPlan lists what a patient eats in each session.
type MealPlan struct {
	patientID kernel.UUID
	meals     map[kernel.Session][]kernel.FoodItem

	isConstructed bool
}

// NewMealPlan builds a full-day plan. Sessions missing from meals are left empty,
// but at least one session must carry food.
func NewMealPlan(patientID kernel.UUID, meals map[kernel.Session][]kernel.FoodItem) (*MealPlan, error) {
	if err := patientID.Validate(); err != nil {
		return nil, err
	}

	plan := &MealPlan{
		patientID:     patientID,
		meals:         make(map[kernel.Session][]kernel.FoodItem, len(kernel.Sessions())),
		isConstructed: true,
	}

	total := 0
	for session, items := range meals {
		if err := session.Validate(); err != nil {
			return nil, err
		}
		for i, item := range items {
			if item.IsZero() {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"meals", fmt.Errorf("%s item %d was not constructed", session, i))
			}
		}
		if len(items) > 0 {
			plan.meals[session] = slices.Clone(items)
			total += len(items)
		}
	}

	if total == 0 {
		return nil, errs.NewValueIsRequiredError("meals")
	}

	return plan, nil
}

func (m *MealPlan) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMealPlanIsNotConstructed
	}
	return nil
}

func (m *MealPlan) PatientID() kernel.UUID {
	return m.patientID
}

// ItemsFor returns the session's items, or nil when the session is not planned.
func (m *MealPlan) ItemsFor(session kernel.Session) []kernel.FoodItem {
	return slices.Clone(m.meals[session])
}

// HasSession reports whether the plan has food for session.
func (m *MealPlan) HasSession(session kernel.Session) bool {
	return len(m.meals[session]) > 0
}
