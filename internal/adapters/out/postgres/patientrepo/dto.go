// Package patientrepo persists patients and their meal plans with GORM.
package patientrepo

import (
	"time"

	"hospitalfood/internal/adapters/out/postgres/fooditem"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/patient"

	"github.com/google/uuid"
)

type PatientDTO struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name             string            `gorm:"not null"`
	Diseases         []string          `gorm:"type:jsonb;serializer:json"`
	Allergies        []string          `gorm:"type:jsonb;serializer:json"`
	RoomNumber       string            `gorm:"not null"`
	BedNumber        string            `gorm:"not null"`
	FloorNumber      string
	Age              int
	Gender           string
	ContactInfo      string
	EmergencyContact string
	Others           map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time         `gorm:"not null"`
}

func (PatientDTO) TableName() string {
	return "patients"
}

// MealPlanDTO keeps one jsonb column per session.
type MealPlanDTO struct {
	PatientID uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Morning   []fooditem.DTO `gorm:"type:jsonb;serializer:json"`
	Afternoon []fooditem.DTO `gorm:"type:jsonb;serializer:json"`
	Night     []fooditem.DTO `gorm:"type:jsonb;serializer:json"`
	UpdatedAt time.Time
}

func (MealPlanDTO) TableName() string {
	return "meal_plans"
}

func patientFromDomain(p *patient.Patient) PatientDTO {
	profile := p.Profile()

	dto := PatientDTO{
		ID:               p.ID().Bytes(),
		Name:             profile.Name,
		Diseases:         profile.Diseases,
		Allergies:        profile.Allergies,
		RoomNumber:       profile.RoomNumber,
		BedNumber:        profile.BedNumber,
		FloorNumber:      profile.FloorNumber,
		Age:              profile.Age,
		Gender:           string(profile.Gender),
		ContactInfo:      profile.ContactInfo,
		EmergencyContact: profile.EmergencyContact,
		Others:           profile.Others,
		CreatedAt:        p.CreatedAt(),
	}
	if dto.Diseases == nil {
		dto.Diseases = []string{}
	}
	if dto.Allergies == nil {
		dto.Allergies = []string{}
	}
	if dto.Others == nil {
		dto.Others = map[string]string{}
	}
	return dto
}

func patientToDomain(dto PatientDTO) (*patient.Patient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return patient.RestorePatient(id, patient.Profile{
		Name:             dto.Name,
		Diseases:         dto.Diseases,
		Allergies:        dto.Allergies,
		RoomNumber:       dto.RoomNumber,
		BedNumber:        dto.BedNumber,
		FloorNumber:      dto.FloorNumber,
		Age:              dto.Age,
		Gender:           patient.Gender(dto.Gender),
		ContactInfo:      dto.ContactInfo,
		EmergencyContact: dto.EmergencyContact,
		Others:           dto.Others,
	}, dto.CreatedAt)
}

func mealPlanFromDomain(plan *patient.MealPlan, updatedAt time.Time) MealPlanDTO {
	return MealPlanDTO{
		PatientID: plan.PatientID().Bytes(),
		Morning:   fooditem.FromDomain(plan.ItemsFor(kernel.SessionMorning)),
		Afternoon: fooditem.FromDomain(plan.ItemsFor(kernel.SessionAfternoon)),
		Night:     fooditem.FromDomain(plan.ItemsFor(kernel.SessionNight)),
		UpdatedAt: updatedAt,
	}
}

func mealPlanToDomain(dto MealPlanDTO) (*patient.MealPlan, error) {
	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}

	meals := make(map[kernel.Session][]kernel.FoodItem, 3)
	for session, dtos := range map[kernel.Session][]fooditem.DTO{
		kernel.SessionMorning:   dto.Morning,
		kernel.SessionAfternoon: dto.Afternoon,
		kernel.SessionNight:     dto.Night,
	} {
		items, itemsErr := fooditem.ToDomain(dtos)
		if itemsErr != nil {
			return nil, itemsErr
		}
		meals[session] = items
	}

	return patient.NewMealPlan(patientID, meals)
}
