// Package patient models hospital patients and the meal plans the kitchen cooks for them.
//
// A Patient carries the clinical profile the kitchen needs (diseases, allergies) and
// where to find them (floor, room, bed). A MealPlan lists the food items for each
// session of the day; saving a plan replaces all sessions at once.
package patient
