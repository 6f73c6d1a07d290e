package patientrepo

import (
	"context"
	"errors"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPatientRepository implements ports.PatientRepository using GORM.
type GormPatientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPatientRepository(db *gorm.DB, tracker aggregateTracker) *GormPatientRepository {
	return &GormPatientRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPatientRepository) Add(ctx context.Context, aggregate *patient.Patient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := patientFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("patient", id.String())
		}
		return nil, err
	}

	return patientToDomain(dto)
}

func (r *GormPatientRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*patient.Patient, error) {
	raw, err := rawIDs(ids)
	if err != nil {
		return nil, err
	}

	var dtos []PatientDTO
	if err = r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]PatientDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	patients := make([]*patient.Patient, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("patient", id.String())
		}
		p, toErr := patientToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		patients = append(patients, p)
	}

	return patients, nil
}

// SaveMealPlan inserts the plan or replaces all three sessions of the stored one.
func (r *GormPatientRepository) SaveMealPlan(ctx context.Context, plan *patient.MealPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	dto := mealPlanFromDomain(plan, time.Now().UTC())
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "patient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"morning", "afternoon", "night", "updated_at"}),
		}).
		Create(&dto).Error
}

func (r *GormPatientRepository) GetMealPlans(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*patient.MealPlan, error) {
	raw, err := rawIDs(ids)
	if err != nil {
		return nil, err
	}

	var dtos []MealPlanDTO
	if err = r.db.WithContext(ctx).Find(&dtos, "patient_id IN ?", raw).Error; err != nil {
		return nil, err
	}

	plans := make(map[kernel.UUID]*patient.MealPlan, len(dtos))
	for _, dto := range dtos {
		plan, toErr := mealPlanToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		plans[plan.PatientID()] = plan
	}

	return plans, nil
}

func rawIDs(ids []kernel.UUID) ([]uuid.UUID, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	return raw, nil
}
