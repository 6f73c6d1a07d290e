// Package services holds domain logic that spans several aggregates.
//
// The package includes:
//   - MealOrderPlanner: turns a caregiver's selection into one order per patient for a session
//   - DeliveryAssigner: hands a batch of orders to a delivery person working at the destination
package services
