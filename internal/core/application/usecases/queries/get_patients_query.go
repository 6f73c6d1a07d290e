package queries

import (
	"errors"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/guard"
)

var (
	ErrGetPatientsQueryIsNotConstructed = errors.New(
		"GetPatientsQuery must be created via NewGetPatientsQuery constructor",
	)
	ErrGetPatientsWithMealQueryIsNotConstructed = errors.New(
		"GetPatientsWithMealQuery must be created via NewGetPatientsWithMealQuery constructor",
	)
)

// GetPatientsQuery lists every registered patient by name.
type GetPatientsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPatientsQuery() GetPatientsQuery {
	return GetPatientsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPatientsQuery) Validate() error {
	return q.guard.Validate(ErrGetPatientsQueryIsNotConstructed)
}

// GetPatientsWithMealQuery lists the patients whose meal plan has food for a session,
// together with that food. It backs the meal selector.
type GetPatientsWithMealQuery struct {
	session kernel.Session

	guard guard.ConstructorGuard
}

func NewGetPatientsWithMealQuery(session string) (GetPatientsWithMealQuery, error) {
	parsed, err := kernel.ParseSession(session)
	if err != nil {
		return GetPatientsWithMealQuery{}, err
	}

	return GetPatientsWithMealQuery{
		session: parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetPatientsWithMealQuery) Validate() error {
	return q.guard.Validate(ErrGetPatientsWithMealQueryIsNotConstructed)
}

func (q GetPatientsWithMealQuery) Session() kernel.Session {
	return q.session
}

type PatientView struct {
	ID               kernel.UUID
	Name             string
	Diseases         []string
	Allergies        []string
	RoomNumber       string
	BedNumber        string
	FloorNumber      string
	Age              int
	Gender           string
	ContactInfo      string
	EmergencyContact string
	Others           map[string]string
	CreatedAt        time.Time
}

// PatientMeal pairs a patient with the food planned for the queried session.
type PatientMeal struct {
	Patient     PatientView
	MealDetails []FoodItem
}
