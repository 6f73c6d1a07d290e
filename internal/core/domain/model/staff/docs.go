// Package staff models the people who run the food service and the roles that
// scope what each of them may see and change.
package staff
