// Package kernel holds the value objects shared by every aggregate of the food-service domain.
//
// The package includes:
//   - UUID: identifier for orders, patients and staff members
//   - Session: the closed set of meal services (morning, afternoon, night)
//   - Location: a named ward, kitchen or building
//   - FoodItem: one dish with a positive quantity and optional instructions
//
// Zero values of UUID and Location are invalid and fail Validate, so aggregates can
// detect values that bypassed their constructors.
package kernel
