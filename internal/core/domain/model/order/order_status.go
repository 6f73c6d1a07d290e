package order

import (
	"fmt"

	"hospitalfood/internal/pkg/errs"
)

// OrderStatus is the kitchen progress of an order.
type OrderStatus int

const (
	OrderStatusUnknown OrderStatus = iota
	OrderPending
	OrderPreparing
	OrderCompleted
)

var orderStatusNames = map[OrderStatus]string{
	OrderPending:   "pending",
	OrderPreparing: "preparing",
	OrderCompleted: "completed",
}

// OrderStatuses lists the valid kitchen statuses in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderPreparing, OrderCompleted}
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for status, name := range orderStatusNames {
		if name == s {
			return status, nil
		}
	}
	return OrderStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus is invalid",
		fmt.Errorf("%q is not one of pending, preparing, completed", s),
	)
}

func (s OrderStatus) Validate() error {
	if _, ok := orderStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ValidateAdvanceTo accepts only strictly forward moves between valid statuses.
func (s OrderStatus) ValidateAdvanceTo(target OrderStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if target <= s {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus is invalid",
			fmt.Errorf("cannot move from %s to %s", s, target),
		)
	}
	return nil
}

// AdvanceTo returns target when the move is allowed.
func (s OrderStatus) AdvanceTo(target OrderStatus) (OrderStatus, error) {
	if err := s.ValidateAdvanceTo(target); err != nil {
		return OrderStatusUnknown, err
	}
	return target, nil
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *OrderStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
