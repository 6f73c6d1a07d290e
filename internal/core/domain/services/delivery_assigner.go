package services

import (
	"fmt"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/errs"
)

// DeliveryAssigner hands orders over to a delivery person.
type DeliveryAssigner struct{}

func NewDeliveryAssigner() DeliveryAssigner {
	return DeliveryAssigner{}
}

// Assign checks every order before touching any, so a batch either moves as a whole or not at all.
func (DeliveryAssigner) Assign(orders []*order.Order, person *staff.Staff, location kernel.Location, notes string) error {
	if err := person.Validate(); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if err := person.ValidateDeliveryAt(location); err != nil {
		return err
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if o.DeliveryStatus().IsTerminal() {
			return errs.NewValueIsInvalidErrorWithCause(
				"orderIds",
				fmt.Errorf("order %s is already delivered", o.ID()),
			)
		}
	}

	for _, o := range orders {
		if err := o.AssignDelivery(person.ID(), location, notes); err != nil {
			return err
		}
	}

	return nil
}
