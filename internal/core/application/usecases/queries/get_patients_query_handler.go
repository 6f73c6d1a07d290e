package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"hospitalfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const patientColumns = `
	p.id, p.name, p.diseases, p.allergies, p.room_number, p.bed_number, p.floor_number,
	p.age, p.gender, p.contact_info, p.emergency_contact, p.others, p.created_at`

// mealColumns maps a session to its meal_plans column.
var mealColumns = map[kernel.Session]string{
	kernel.SessionMorning:   "mp.morning",
	kernel.SessionAfternoon: "mp.afternoon",
	kernel.SessionNight:     "mp.night",
}

type GetPatientsQueryHandler struct {
	db *gorm.DB
}

func NewGetPatientsQueryHandler(db *gorm.DB) GetPatientsQueryHandler {
	return GetPatientsQueryHandler{db: db}
}

func (h GetPatientsQueryHandler) Handle(ctx context.Context, query GetPatientsQuery) ([]PatientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT` + patientColumns + `
		FROM patients p
		ORDER BY p.name, p.id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]PatientView, 0)
	for rows.Next() {
		view, scanErr := scanPatient(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		patients = append(patients, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return patients, nil
}

type GetPatientsWithMealQueryHandler struct {
	db *gorm.DB
}

func NewGetPatientsWithMealQueryHandler(db *gorm.DB) GetPatientsWithMealQueryHandler {
	return GetPatientsWithMealQueryHandler{db: db}
}

func (h GetPatientsWithMealQueryHandler) Handle(
	ctx context.Context,
	query GetPatientsWithMealQuery,
) ([]PatientMeal, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column, ok := mealColumns[query.Session()]
	if !ok {
		return nil, fmt.Errorf("no meal column for session %s", query.Session())
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT` + patientColumns + `, ` + column + `
		FROM patients p
		JOIN meal_plans mp ON mp.patient_id = p.id
		WHERE jsonb_array_length(` + column + `) > 0
		ORDER BY p.name, p.id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]PatientMeal, 0)
	for rows.Next() {
		var meal []byte
		view, scanErr := scanPatient(rows, &meal)
		if scanErr != nil {
			return nil, scanErr
		}

		items, decodeErr := decodeItems(meal)
		if decodeErr != nil {
			return nil, decodeErr
		}
		result = append(result, PatientMeal{Patient: view, MealDetails: items})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// scanPatient reads patientColumns followed by any extra columns.
func scanPatient(rows *sql.Rows, extra ...any) (PatientView, error) {
	var (
		view                       PatientView
		id                         uuid.UUID
		diseases, allergies, other []byte
	)

	dest := []any{
		&id, &view.Name, &diseases, &allergies, &view.RoomNumber, &view.BedNumber, &view.FloorNumber,
		&view.Age, &view.Gender, &view.ContactInfo, &view.EmergencyContact, &other, &view.CreatedAt,
	}
	if err := rows.Scan(append(dest, extra...)...); err != nil {
		return PatientView{}, err
	}

	var err error
	if view.ID, err = toKernelUUID(id); err != nil {
		return PatientView{}, err
	}

	view.Diseases, view.Allergies, view.Others = []string{}, []string{}, map[string]string{}
	for _, field := range []struct {
		raw  []byte
		into any
	}{
		{diseases, &view.Diseases},
		{allergies, &view.Allergies},
		{other, &view.Others},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err = json.Unmarshal(field.raw, field.into); err != nil {
			return PatientView{}, err
		}
	}

	return view, nil
}
