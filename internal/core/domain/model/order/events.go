package order

import (
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
)

// Axis names the status dimension a StatusChanged event refers to.
type Axis string

const (
	AxisOrder    Axis = "orderStatus"
	AxisDelivery Axis = "deliveryStatus"
)

// StatusChanged is recorded each time one status axis of an order advances.
type StatusChanged struct {
	OrderID    kernel.UUID
	Axis       Axis
	From       string
	To         string
	OccurredAt time.Time
}
