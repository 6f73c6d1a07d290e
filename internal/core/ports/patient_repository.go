package ports

import (
	"context"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/patient"
)

// PatientRepository persists patients and their meal plans.
type PatientRepository interface {
	Add(ctx context.Context, aggregate *patient.Patient) error

	Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error)

	// GetMany returns patients in the order of ids or fails naming the first missing ID.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*patient.Patient, error)

	// SaveMealPlan replaces the patient's whole plan.
	SaveMealPlan(ctx context.Context, plan *patient.MealPlan) error

	// GetMealPlans returns the stored plans of the given patients keyed by patient ID.
	// Patients without a plan are absent from the map.
	GetMealPlans(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*patient.MealPlan, error)
}
