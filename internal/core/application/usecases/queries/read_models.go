package queries

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// FoodItem is one dish as stored in a jsonb column.
type FoodItem struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions,omitempty"`
}

// StaffRef is the short form of a staff member attached to an order.
type StaffRef struct {
	ID          kernel.UUID
	Name        string
	ContactInfo string
}

// StaffView is a staff member without credentials.
type StaffView struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Role        staff.Role
	ContactInfo string
	Location    string
	CreatedAt   time.Time
}

func decodeItems(raw []byte) ([]FoodItem, error) {
	items := make([]FoodItem, 0)
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
