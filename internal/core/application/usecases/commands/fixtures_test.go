package commands_test

import (
	"testing"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/core/domain/model/staff"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)

func newMember(t *testing.T, role staff.Role, location string) *staff.Staff {
	t.Helper()
	id := kernel.NewUUID()
	s, err := staff.NewStaff(id, "Member "+role.String(), id.String()+"@hospital.test", "stored-hash",
		role, "", kernel.MustLocation(location), fixedTime)
	require.NoError(t, err)
	return s
}

func newPatient(t *testing.T, name string) *patient.Patient {
	t.Helper()
	p, err := patient.NewPatient(kernel.NewUUID(), patient.Profile{Name: name, RoomNumber: "12", BedNumber: "1"}, fixedTime)
	require.NoError(t, err)
	return p
}

func foodItem(t *testing.T, name string) kernel.FoodItem {
	t.Helper()
	item, err := kernel.NewFoodItem(name, 1, "")
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T, pantryID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.SessionMorning, pantryID,
		kernel.MustLocation("Main Kitchen"), []kernel.FoodItem{foodItem(t, "Porridge")}, fixedTime)
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T {
	return &v
}
