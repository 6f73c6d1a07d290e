package order

import (
	"fmt"

	"hospitalfood/internal/pkg/errs"
)

// DeliveryStatus is the hand-off progress of an order.
type DeliveryStatus int

const (
	DeliveryStatusUnknown DeliveryStatus = iota
	DeliveryPending
	DeliveryInProgress
	DeliveryDelivered
)

var deliveryStatusNames = map[DeliveryStatus]string{
	DeliveryPending:    "pending",
	DeliveryInProgress: "inProgress",
	DeliveryDelivered:  "delivered",
}

// DeliveryStatuses lists the valid delivery statuses in lifecycle order.
func DeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryPending, DeliveryInProgress, DeliveryDelivered}
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, name := range deliveryStatusNames {
		if name == s {
			return status, nil
		}
	}
	return DeliveryStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus is invalid",
		fmt.Errorf("%q is not one of pending, inProgress, delivered", s),
	)
}

func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further delivery change is possible.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered
}

// ValidateAdvanceTo accepts only strictly forward moves between valid statuses.
func (s DeliveryStatus) ValidateAdvanceTo(target DeliveryStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if target <= s {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus is invalid",
			fmt.Errorf("cannot move from %s to %s", s, target),
		)
	}
	return nil
}

func (s DeliveryStatus) AdvanceTo(target DeliveryStatus) (DeliveryStatus, error) {
	if err := s.ValidateAdvanceTo(target); err != nil {
		return DeliveryStatusUnknown, err
	}
	return target, nil
}

func (s DeliveryStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *DeliveryStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseDeliveryStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
