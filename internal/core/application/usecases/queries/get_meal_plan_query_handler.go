package queries

import (
	"context"
	"errors"

	"hospitalfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMealPlanQueryHandler struct {
	db *gorm.DB
}

func NewGetMealPlanQueryHandler(db *gorm.DB) GetMealPlanQueryHandler {
	return GetMealPlanQueryHandler{db: db}
}

// Handle fails with errs.ObjectNotFoundError for an unknown patient. A patient
// without a plan gets three empty sessions.
func (h GetMealPlanQueryHandler) Handle(ctx context.Context, query GetMealPlanQuery) (MealPlanView, error) {
	if err := query.Validate(); err != nil {
		return MealPlanView{}, err
	}

	var row struct {
		Name      string
		Morning   []byte
		Afternoon []byte
		Night     []byte
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT p.name, mp.morning, mp.afternoon, mp.night
		FROM patients p
		LEFT JOIN meal_plans mp ON mp.patient_id = p.id
		WHERE p.id = ?`, query.PatientID().String()).
		Row().
		Scan(&row.Name, &row.Morning, &row.Afternoon, &row.Night)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || isNoRows(err) {
			return MealPlanView{}, errs.NewObjectNotFoundError("patient", query.PatientID().String())
		}
		return MealPlanView{}, err
	}

	view := MealPlanView{PatientID: query.PatientID(), PatientName: row.Name}
	if view.Morning, err = decodeItems(row.Morning); err != nil {
		return MealPlanView{}, err
	}
	if view.Afternoon, err = decodeItems(row.Afternoon); err != nil {
		return MealPlanView{}, err
	}
	if view.Night, err = decodeItems(row.Night); err != nil {
		return MealPlanView{}, err
	}

	return view, nil
}
