// Package order models a meal order for one patient and one meal session.
//
// An order moves along two independent axes:
//   - OrderStatus tracks the kitchen: pending -> preparing -> completed
//   - DeliveryStatus tracks the hand-off: pending -> inProgress -> delivered
//
// Key business rules:
//   - Changing one axis never changes the other
//   - Transitions only move forward; skipping a step is allowed, repeating or going back is not
//   - Delivery can leave pending only once a delivery person is assigned
//   - A delivery person can be (re)assigned until the order is delivered
//   - An order carries at least one food item and every quantity is positive
//
// Status changes are recorded as StatusChanged events that the application layer
// publishes after the surrounding transaction commits.
package order
