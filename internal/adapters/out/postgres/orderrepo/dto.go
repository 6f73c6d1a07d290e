// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"hospitalfood/internal/adapters/out/postgres/fooditem"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PatientID            uuid.UUID      `gorm:"type:uuid;not null"`
	Session              int            `gorm:"type:smallint;not null"`
	OrderDate            time.Time      `gorm:"type:date;not null"`
	CreatedAt            time.Time      `gorm:"not null"`
	OrderStatus          int            `gorm:"type:smallint;not null"`
	DeliveryStatus       int            `gorm:"type:smallint;not null"`
	PantryStaffID        uuid.UUID      `gorm:"type:uuid;not null"`
	PantryLocation       string         `gorm:"not null"`
	Items                []fooditem.DTO `gorm:"type:jsonb;serializer:json;not null"`
	DeliveryPersonID     *uuid.UUID     `gorm:"type:uuid"`
	DeliveryLocation     string
	SpecialNotes         string
	CookingSpecialNotes  string
	DeliverySpecialNotes string
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()

	var personID *uuid.UUID
	if s.DeliveryPersonID != nil {
		raw := s.DeliveryPersonID.Bytes()
		personID = &raw
	}

	return OrderDTO{
		ID:                   s.ID.Bytes(),
		PatientID:            s.PatientID.Bytes(),
		Session:              int(s.Session),
		OrderDate:            s.OrderDate,
		CreatedAt:            s.CreatedAt,
		OrderStatus:          int(s.OrderStatus),
		DeliveryStatus:       int(s.DeliveryStatus),
		PantryStaffID:        s.PantryStaffID.Bytes(),
		PantryLocation:       s.PantryLocation.Name(),
		Items:                fooditem.FromDomain(s.Items),
		DeliveryPersonID:     personID,
		DeliveryLocation:     s.DeliveryLocation.Name(),
		SpecialNotes:         s.SpecialNotes,
		CookingSpecialNotes:  s.CookingSpecialNotes,
		DeliverySpecialNotes: s.DeliverySpecialNotes,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}
	pantryStaffID, err := kernel.UUIDFromBytes(dto.PantryStaffID[:])
	if err != nil {
		return nil, err
	}
	pantryLocation, err := kernel.NewLocation(dto.PantryLocation)
	if err != nil {
		return nil, err
	}
	items, err := fooditem.ToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	var personID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		pID, idErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if idErr != nil {
			return nil, idErr
		}
		personID = &pID
	}

	// Orders without a delivery person store an empty destination.
	var deliveryLocation kernel.Location
	if dto.DeliveryLocation != "" {
		if deliveryLocation, err = kernel.NewLocation(dto.DeliveryLocation); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                   id,
		PatientID:            patientID,
		Session:              kernel.Session(dto.Session),
		OrderDate:            dto.OrderDate,
		CreatedAt:            dto.CreatedAt,
		OrderStatus:          order.OrderStatus(dto.OrderStatus),
		DeliveryStatus:       order.DeliveryStatus(dto.DeliveryStatus),
		PantryStaffID:        pantryStaffID,
		PantryLocation:       pantryLocation,
		Items:                items,
		DeliveryPersonID:     personID,
		DeliveryLocation:     deliveryLocation,
		SpecialNotes:         dto.SpecialNotes,
		CookingSpecialNotes:  dto.CookingSpecialNotes,
		DeliverySpecialNotes: dto.DeliverySpecialNotes,
	})
}
