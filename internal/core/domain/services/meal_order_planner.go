package services

import (
	"errors"
	"fmt"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/errs"
)

var (
	ErrNoPatientsSelected = errs.NewValueIsRequiredError("patientIds")
	ErrNotPantryStaff     = errs.NewValueIsInvalidErrorWithCause("pantryStaffId", errors.New("staff member is not pantry staff"))
)

// MealRequest describes one placement: the patients, what each eats and who cooks.
// Items maps a patient to explicitly chosen food; patients without an entry fall back
// to their meal plan for the session.
type MealRequest struct {
	Patients            []*patient.Patient
	Items               map[kernel.UUID][]kernel.FoodItem
	Plans               map[kernel.UUID]*patient.MealPlan
	Session             kernel.Session
	PantryStaff         *staff.Staff
	PantryLocation      kernel.Location
	SpecialNotes        string
	CookingSpecialNotes string
	PlacedAt            time.Time
}

// MealOrderPlanner fans a MealRequest out into pending orders.
type MealOrderPlanner struct {
	newID func() kernel.UUID
}

func NewMealOrderPlanner() MealOrderPlanner {
	return MealOrderPlanner{newID: kernel.NewUUID}
}

// Plan returns one order per patient, in the order the patients were given.
// Nothing is returned unless every patient can be served.
func (p MealOrderPlanner) Plan(req MealRequest) ([]*order.Order, error) {
	if len(req.Patients) == 0 {
		return nil, ErrNoPatientsSelected
	}
	if err := req.Session.Validate(); err != nil {
		return nil, err
	}
	if err := req.PantryStaff.Validate(); err != nil {
		return nil, err
	}
	if req.PantryStaff.Role() != staff.RolePantryStaff {
		return nil, ErrNotPantryStaff
	}

	location := req.PantryLocation
	if location.IsZero() {
		location = req.PantryStaff.Location()
	}

	newID := p.newID
	if newID == nil {
		newID = kernel.NewUUID
	}

	orders := make([]*order.Order, 0, len(req.Patients))
	for _, pt := range req.Patients {
		if err := pt.Validate(); err != nil {
			return nil, err
		}

		items, err := itemsFor(pt, req)
		if err != nil {
			return nil, err
		}

		o, err := order.NewOrder(newID(), pt.ID(), req.Session, req.PantryStaff.ID(), location, items, req.PlacedAt)
		if err != nil {
			return nil, err
		}
		if err = o.SetSpecialNotes(req.SpecialNotes, req.CookingSpecialNotes); err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, nil
}

func itemsFor(pt *patient.Patient, req MealRequest) ([]kernel.FoodItem, error) {
	if items := req.Items[pt.ID()]; len(items) > 0 {
		return items, nil
	}

	if plan, ok := req.Plans[pt.ID()]; ok && plan.HasSession(req.Session) {
		return plan.ItemsFor(req.Session), nil
	}

	return nil, errs.NewValueIsRequiredErrorWithCause(
		"foodDetails",
		fmt.Errorf("no %s meal chosen or planned for %s", req.Session, pt.Name()),
	)
}
