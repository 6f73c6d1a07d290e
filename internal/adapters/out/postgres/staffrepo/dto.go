// Package staffrepo persists staff accounts with GORM.
package staffrepo

import (
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

type StaffDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Role         int       `gorm:"type:smallint;not null"`
	ContactInfo  string
	Location     string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(member *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:           member.ID().Bytes(),
		Name:         member.Name(),
		Email:        member.Email(),
		PasswordHash: member.PasswordHash(),
		Role:         int(member.Role()),
		ContactInfo:  member.ContactInfo(),
		Location:     member.Location().Name(),
		CreatedAt:    member.CreatedAt(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewLocation(dto.Location)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		staff.Role(dto.Role),
		dto.ContactInfo,
		location,
		dto.CreatedAt,
	)
}
