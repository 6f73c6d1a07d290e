package commands

import (
	"context"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/services"
)

type PlaceMealOrderCommandHandler struct {
	uowFactory UoWFactory
	planner    services.MealOrderPlanner
}

func NewPlaceMealOrderCommandHandler(uowFactory UoWFactory, planner services.MealOrderPlanner) PlaceMealOrderCommandHandler {
	return PlaceMealOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
	}
}

// Handle places one order per patient in a single transaction and returns their IDs.
func (h *PlaceMealOrderCommandHandler) Handle(ctx context.Context, cmd PlaceMealOrderCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	patientRepo := uow.PatientRepository()
	staffRepo := uow.StaffRepository()
	orderRepo := uow.OrderRepository()

	patients, err := patientRepo.GetMany(ctx, cmd.PatientIDs())
	if err != nil {
		return nil, err
	}

	plans, err := patientRepo.GetMealPlans(ctx, cmd.PatientIDs())
	if err != nil {
		return nil, err
	}

	cook, err := staffRepo.Get(ctx, cmd.PantryStaffID())
	if err != nil {
		return nil, err
	}

	orders, err := h.planner.Plan(services.MealRequest{
		Patients:            patients,
		Items:               cmd.FoodDetails(),
		Plans:               plans,
		Session:             cmd.Session(),
		PantryStaff:         cook,
		PantryLocation:      cmd.PantryLocation(),
		SpecialNotes:        cmd.SpecialNotes(),
		CookingSpecialNotes: cmd.CookingSpecialNotes(),
		PlacedAt:            time.Now(),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
		ids = append(ids, o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
