package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/pkg/errs"
	"hospitalfood/internal/pkg/guard"
)

const MinPasswordLength = 8

var ErrRegisterStaffCommandIsNotConstructed = errors.New(
	"RegisterStaffCommand must be created via NewRegisterStaffCommand constructor",
)

// RegisterStaffCommand creates an account on behalf of actorRole.
type RegisterStaffCommand struct { //nolint:recvcheck //using for validation
	staffID     kernel.UUID
	name        string
	email       string
	password    string
	role        staff.Role
	contactInfo string
	location    kernel.Location

	guard guard.ConstructorGuard
}

func NewRegisterStaffCommand(
	actorRole staff.Role,
	name, email, password string,
	role staff.Role,
	contactInfo string,
	location string,
) (RegisterStaffCommand, error) {
	cmd := RegisterStaffCommand{
		staffID:     kernel.NewUUID(),
		name:        strings.TrimSpace(name),
		email:       strings.ToLower(strings.TrimSpace(email)),
		contactInfo: strings.TrimSpace(contactInfo),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPassword(password),
		cmd.setRole(actorRole, role),
		cmd.setLocation(location),
	); err != nil {
		return RegisterStaffCommand{}, err
	}

	return cmd, nil
}

func (c RegisterStaffCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStaffCommandIsNotConstructed)
}

func (c RegisterStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c RegisterStaffCommand) Name() string {
	return c.name
}

func (c RegisterStaffCommand) Email() string {
	return c.email
}

func (c RegisterStaffCommand) Password() string {
	return c.password
}

func (c RegisterStaffCommand) Role() staff.Role {
	return c.role
}

func (c RegisterStaffCommand) ContactInfo() string {
	return c.contactInfo
}

func (c RegisterStaffCommand) Location() kernel.Location {
	return c.location
}

func (c *RegisterStaffCommand) setPassword(password string) error {
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength),
		)
	}
	c.password = password
	return nil
}

func (c *RegisterStaffCommand) setRole(actorRole, role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !actorRole.CanRegister(role) {
		return fmt.Errorf("%w: %s cannot register %s accounts", ports.ErrAccessDenied, actorRole, role)
	}
	c.role = role
	return nil
}

func (c *RegisterStaffCommand) setLocation(location string) error {
	loc, err := kernel.NewLocation(location)
	if err != nil {
		return err
	}
	c.location = loc
	return nil
}
