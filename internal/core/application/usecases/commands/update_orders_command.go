package commands

import (
	"errors"
	"fmt"
	"strings"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/pkg/errs"
	"hospitalfood/internal/pkg/guard"
)

const MaxOrdersPerUpdate = 200

var (
	ErrUpdateOrdersCommandIsNotConstructed = errors.New(
		"UpdateOrdersCommand must be created via NewUpdateOrdersCommand constructor",
	)
	ErrNothingToUpdate = errs.NewValueIsRequiredErrorWithCause(
		"update",
		errors.New("at least one of orderStatus, deliveryStatus, deliveryPersonId or notes must be set"),
	)
)

// OrderChanges lists the optional fields of a batch update; nil means unchanged.
type OrderChanges struct {
	OrderStatus          *order.OrderStatus
	DeliveryStatus       *order.DeliveryStatus
	DeliveryPersonID     *kernel.UUID
	Location             *string
	DeliverySpecialNotes *string
	CookingSpecialNotes  *string
}

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   kernel.UUID
	Role staff.Role
}

// UpdateOrdersCommand applies the same changes to every listed order, all or nothing.
type UpdateOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	actor    Actor

	orderStatus          *order.OrderStatus
	deliveryStatus       *order.DeliveryStatus
	deliveryPersonID     *kernel.UUID
	location             kernel.Location
	deliverySpecialNotes string
	cookingSpecialNotes  *string

	guard guard.ConstructorGuard
}

func NewUpdateOrdersCommand(actor Actor, orderIDs []kernel.UUID, changes OrderChanges) (UpdateOrdersCommand, error) {
	cmd := UpdateOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderIDs(orderIDs),
		cmd.setChanges(changes),
	); err != nil {
		return UpdateOrdersCommand{}, err
	}

	if err := cmd.checkOwnership(); err != nil {
		return UpdateOrdersCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrdersCommandIsNotConstructed)
}

func (c UpdateOrdersCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

func (c UpdateOrdersCommand) Actor() Actor {
	return c.actor
}

func (c UpdateOrdersCommand) OrderStatus() *order.OrderStatus {
	return c.orderStatus
}

func (c UpdateOrdersCommand) DeliveryStatus() *order.DeliveryStatus {
	return c.deliveryStatus
}

func (c UpdateOrdersCommand) DeliveryPersonID() *kernel.UUID {
	return c.deliveryPersonID
}

// Location is the delivery destination; set only together with DeliveryPersonID.
func (c UpdateOrdersCommand) Location() kernel.Location {
	return c.location
}

func (c UpdateOrdersCommand) DeliverySpecialNotes() string {
	return c.deliverySpecialNotes
}

func (c UpdateOrdersCommand) CookingSpecialNotes() *string {
	return c.cookingSpecialNotes
}

func (c *UpdateOrdersCommand) setActor(actor Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrdersCommand) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	if len(ids) > MaxOrdersPerUpdate {
		return errs.NewValueIsOutOfRangeError("orderIds", len(ids), 1, MaxOrdersPerUpdate)
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	c.orderIDs = unique
	return nil
}

func (c *UpdateOrdersCommand) setChanges(changes OrderChanges) error {
	var problems []error

	if changes.OrderStatus != nil {
		if err := changes.OrderStatus.Validate(); err != nil {
			problems = append(problems, err)
		}
		status := *changes.OrderStatus
		c.orderStatus = &status
	}

	if changes.DeliveryStatus != nil {
		if err := changes.DeliveryStatus.Validate(); err != nil {
			problems = append(problems, err)
		}
		status := *changes.DeliveryStatus
		c.deliveryStatus = &status
	}

	if changes.DeliveryPersonID != nil {
		if err := changes.DeliveryPersonID.Validate(); err != nil {
			problems = append(problems, err)
		}
		id := *changes.DeliveryPersonID
		c.deliveryPersonID = &id

		if changes.Location == nil {
			problems = append(problems, errs.NewValueIsRequiredError("location"))
		} else if loc, err := kernel.NewLocation(*changes.Location); err != nil {
			problems = append(problems, err)
		} else {
			c.location = loc
		}

		if changes.DeliverySpecialNotes != nil {
			c.deliverySpecialNotes = strings.TrimSpace(*changes.DeliverySpecialNotes)
		}
	} else if changes.Location != nil || changes.DeliverySpecialNotes != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
			"deliveryPersonId",
			errors.New("location and delivery notes are set together with a delivery person"),
		))
	}

	if changes.CookingSpecialNotes != nil {
		notes := *changes.CookingSpecialNotes
		c.cookingSpecialNotes = &notes
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	if c.orderStatus == nil && c.deliveryStatus == nil && c.deliveryPersonID == nil && c.cookingSpecialNotes == nil {
		return ErrNothingToUpdate
	}

	return nil
}

// checkOwnership limits each role to the fields it is responsible for:
// delivery staff move deliveryStatus only, pantry staff everything but deliveryStatus.
func (c *UpdateOrdersCommand) checkOwnership() error {
	switch c.actor.Role {
	case staff.RoleManager:
		return nil
	case staff.RolePantryStaff:
		if c.deliveryStatus != nil {
			return fmt.Errorf("%w: pantry staff cannot change deliveryStatus", ports.ErrAccessDenied)
		}
		return nil
	case staff.RoleDelivery:
		if c.orderStatus != nil || c.deliveryPersonID != nil || c.cookingSpecialNotes != nil {
			return fmt.Errorf("%w: delivery staff can only change deliveryStatus", ports.ErrAccessDenied)
		}
		return nil
	default:
		return ports.ErrAccessDenied
	}
}
