package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"hospitalfood/internal/pkg/errs"
	"hospitalfood/internal/pkg/guard"
)

// LocationMaxLength bounds the length of a ward or building name.
const LocationMaxLength = 120

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation constructor")

// Location is a named ward, kitchen or building where staff work and orders are delivered.
// Names are compared case-insensitively; surrounding whitespace is dropped on construction.
//
// Example:
//
//	loc, err := kernel.NewLocation("  North Wing ")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // North Wing
type Location struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewLocation validates and normalizes a location name.
// Blank names yield a ValueIsRequiredError, names longer than LocationMaxLength a ValueIsOutOfRangeError.
func NewLocation(name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setName(name); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustLocation is NewLocation for compile-time constants; it panics on invalid input.
func MustLocation(name string) Location {
	loc, err := NewLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Name() string {
	return l.name
}

// IsZero reports whether the location was never set.
func (l Location) IsZero() bool {
	return l.Validate() != nil
}

func (l Location) String() string {
	return l.name
}

// IsEqual compares two constructed locations case-insensitively.
func (l Location) IsEqual(other Location) bool {
	if l.IsZero() || other.IsZero() {
		return false
	}
	return strings.EqualFold(l.name, other.name)
}

func (l *Location) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("location")
	}

	if n := utf8.RuneCountInString(trimmed); n > LocationMaxLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("location", n, 1, LocationMaxLength,
			fmt.Errorf("location name is too long"))
	}

	l.name = trimmed
	return nil
}
