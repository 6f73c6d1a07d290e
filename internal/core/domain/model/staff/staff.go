package staff

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	// ErrStaffIsNotConstructed is returned when using an improperly initialized Staff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff constructor")
	// ErrNotDeliveryPerson is returned when a non-delivery member is picked for a delivery.
	ErrNotDeliveryPerson = errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", errors.New("staff member is not a delivery person"))
)

// Staff is a member of the food-service team: a manager, a pantry cook or a delivery person.
//
// Business rules:
//   - Name, email and password hash are mandatory; email is stored lower-cased
//   - Every member works at exactly one location
//   - Only members with RoleDelivery can take delivery assignments
type Staff struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	contactInfo  string
	location     kernel.Location
	createdAt    time.Time

	isConstructed bool
}

// NewStaff creates a staff member. The password must already be hashed.
func NewStaff(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	contactInfo string,
	location kernel.Location,
	createdAt time.Time,
) (*Staff, error) {
	s := &Staff{
		contactInfo:   strings.TrimSpace(contactInfo),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setPasswordHash(passwordHash),
		s.setRole(role),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff rebuilds a staff member loaded from storage.
func RestoreStaff(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	contactInfo string,
	location kernel.Location,
	createdAt time.Time,
) (*Staff, error) {
	return NewStaff(id, name, email, passwordHash, role, contactInfo, location, createdAt)
}

func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

func (s *Staff) ID() kernel.UUID {
	return s.id
}

func (s *Staff) Name() string {
	return s.name
}

func (s *Staff) Email() string {
	return s.email
}

func (s *Staff) PasswordHash() string {
	return s.passwordHash
}

func (s *Staff) Role() Role {
	return s.role
}

func (s *Staff) ContactInfo() string {
	return s.contactInfo
}

func (s *Staff) Location() kernel.Location {
	return s.location
}

func (s *Staff) CreatedAt() time.Time {
	return s.createdAt
}

// ValidateDeliveryAt checks that the member can deliver to the given location.
func (s *Staff) ValidateDeliveryAt(location kernel.Location) error {
	if s.role != RoleDelivery {
		return ErrNotDeliveryPerson
	}
	if !s.location.IsEqual(location) {
		return errs.NewValueIsInvalidErrorWithCause(
			"location",
			fmt.Errorf("%s works at %s, not %s", s.name, s.location, location),
		)
	}
	return nil
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Staff) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	s.email = email
	return nil
}

func (s *Staff) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	s.passwordHash = hash
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

func (s *Staff) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}
