package commands

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/errs"
	"hospitalfood/internal/pkg/guard"
)

var ErrPlaceMealOrderCommandIsNotConstructed = errors.New(
	"PlaceMealOrderCommand must be created via NewPlaceMealOrderCommand constructor",
)

// PlaceMealOrderCommand orders one session's meal for a set of patients.
// FoodDetails may name food per patient; other patients get their planned meal.
type PlaceMealOrderCommand struct { //nolint:recvcheck //using for validation
	patientIDs          []kernel.UUID
	session             kernel.Session
	foodDetails         map[kernel.UUID][]kernel.FoodItem
	pantryStaffID       kernel.UUID
	pantryLocation      kernel.Location
	specialNotes        string
	cookingSpecialNotes string

	guard guard.ConstructorGuard
}

func NewPlaceMealOrderCommand(
	patientIDs []kernel.UUID,
	session kernel.Session,
	foodDetails map[kernel.UUID][]kernel.FoodItem,
	pantryStaffID kernel.UUID,
	pantryLocation string,
	specialNotes string,
	cookingSpecialNotes string,
) (PlaceMealOrderCommand, error) {
	cmd := PlaceMealOrderCommand{
		foodDetails:         maps.Clone(foodDetails),
		specialNotes:        strings.TrimSpace(specialNotes),
		cookingSpecialNotes: strings.TrimSpace(cookingSpecialNotes),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPatientIDs(patientIDs),
		cmd.setSession(session),
		cmd.setPantryStaffID(pantryStaffID),
		cmd.setPantryLocation(pantryLocation),
	); err != nil {
		return PlaceMealOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceMealOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceMealOrderCommandIsNotConstructed)
}

func (c PlaceMealOrderCommand) PatientIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.patientIDs...)
}

func (c PlaceMealOrderCommand) Session() kernel.Session {
	return c.session
}

func (c PlaceMealOrderCommand) FoodDetails() map[kernel.UUID][]kernel.FoodItem {
	return maps.Clone(c.foodDetails)
}

func (c PlaceMealOrderCommand) PantryStaffID() kernel.UUID {
	return c.pantryStaffID
}

// PantryLocation is zero when the pantry staff member's own location applies.
func (c PlaceMealOrderCommand) PantryLocation() kernel.Location {
	return c.pantryLocation
}

func (c PlaceMealOrderCommand) SpecialNotes() string {
	return c.specialNotes
}

func (c PlaceMealOrderCommand) CookingSpecialNotes() string {
	return c.cookingSpecialNotes
}

func (c *PlaceMealOrderCommand) setPatientIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("patientIds")
	}
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("patientIds", fmt.Errorf("%s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	c.patientIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (c *PlaceMealOrderCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	c.session = session
	return nil
}

func (c *PlaceMealOrderCommand) setPantryStaffID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pantryStaffId", err)
	}
	c.pantryStaffID = id
	return nil
}

func (c *PlaceMealOrderCommand) setPantryLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return nil
	}
	loc, err := kernel.NewLocation(location)
	if err != nil {
		return err
	}
	c.pantryLocation = loc
	return nil
}
