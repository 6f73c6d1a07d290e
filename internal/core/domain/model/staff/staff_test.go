package staff_test

import (
	"testing"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joinedAt = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func newDeliveryPerson(t *testing.T, location string) *staff.Staff {
	t.Helper()
	s, err := staff.NewStaff(kernel.NewUUID(), "Asel", "asel@hospital.test", "$2a$hash",
		staff.RoleDelivery, "+7 700 000 00 00", kernel.MustLocation(location), joinedAt)
	require.NoError(t, err)
	return s
}

func TestNewStaff(t *testing.T) {
	t.Run("should normalize email and trim fields", func(t *testing.T) {
		s, err := staff.NewStaff(kernel.NewUUID(), " Dana ", " Dana@Hospital.TEST ", "$2a$hash",
			staff.RolePantryStaff, " 555-01 ", kernel.MustLocation("Main Kitchen"), joinedAt)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Dana", s.Name())
		assert.Equal(t, "dana@hospital.test", s.Email())
		assert.Equal(t, "555-01", s.ContactInfo())
		assert.Equal(t, staff.RolePantryStaff, s.Role())
		assert.Equal(t, "Main Kitchen", s.Location().Name())
		assert.Equal(t, joinedAt, s.CreatedAt())
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "Dana", "not-an-email", "$2a$hash",
			staff.RolePantryStaff, "", kernel.MustLocation("Main Kitchen"), joinedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not an email address")
	})

	t.Run("should collect every missing field", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.UUID{}, "", "", "", staff.RoleUnknown, "", kernel.Location{}, joinedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, staff.ErrNameIsRequired)
		assert.ErrorIs(t, err, staff.ErrPasswordHashIsRequired)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var s *staff.Staff

		assert.Equal(t, staff.ErrStaffIsNotConstructed, s.Validate())
		assert.Equal(t, staff.ErrStaffIsNotConstructed, (&staff.Staff{}).Validate())
	})
}

func TestStaff_ValidateDeliveryAt(t *testing.T) {
	t.Run("should accept delivery person at the same location", func(t *testing.T) {
		s := newDeliveryPerson(t, "Ward 3")

		assert.NoError(t, s.ValidateDeliveryAt(kernel.MustLocation("ward 3")))
	})

	t.Run("should reject delivery person elsewhere", func(t *testing.T) {
		s := newDeliveryPerson(t, "Ward 3")

		err := s.ValidateDeliveryAt(kernel.MustLocation("ICU"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "works at Ward 3, not ICU")
	})

	t.Run("should reject other roles", func(t *testing.T) {
		cook, err := staff.NewStaff(kernel.NewUUID(), "Bolat", "bolat@hospital.test", "$2a$hash",
			staff.RolePantryStaff, "", kernel.MustLocation("Ward 3"), joinedAt)
		require.NoError(t, err)

		assert.Equal(t, staff.ErrNotDeliveryPerson, cook.ValidateDeliveryAt(kernel.MustLocation("Ward 3")))
	})
}

func TestRole(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		for name, want := range map[string]staff.Role{
			"Manager":     staff.RoleManager,
			"PantryStaff": staff.RolePantryStaff,
			"Delivery":    staff.RoleDelivery,
		} {
			got, err := staff.ParseRole(name)

			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, name, got.String())
		}
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := staff.ParseRole("Chef")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Unknown", staff.Role(42).String())
	})

	t.Run("should limit who can register whom", func(t *testing.T) {
		assert.True(t, staff.RoleManager.CanRegister(staff.RoleManager))
		assert.True(t, staff.RoleManager.CanRegister(staff.RoleDelivery))
		assert.False(t, staff.RoleManager.CanRegister(staff.RoleUnknown))
		assert.True(t, staff.RolePantryStaff.CanRegister(staff.RoleDelivery))
		assert.False(t, staff.RolePantryStaff.CanRegister(staff.RolePantryStaff))
		assert.False(t, staff.RoleDelivery.CanRegister(staff.RoleDelivery))
	})
}
