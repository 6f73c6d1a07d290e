package http

import (
	"net/http"

	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreatePatient handles POST /api/patients.
func (s *Server) CreatePatient(c echo.Context) error {
	req, err := bind[servers.PatientRequest](c)
	if err != nil {
		return err
	}

	var gender patient.Gender
	if req.Gender != nil {
		gender = patient.Gender(*req.Gender)
	}

	cmd := commands.NewCreatePatientCommand(patient.Profile{
		Name:             req.Name,
		Diseases:         req.Diseases,
		Allergies:        req.Allergies,
		RoomNumber:       req.RoomNumber,
		BedNumber:        req.BedNumber,
		FloorNumber:      req.FloorNumber,
		Age:              req.Age,
		Gender:           gender,
		ContactInfo:      req.ContactInfo,
		EmergencyContact: req.EmergencyContact,
		Others:           req.Others,
	})

	id, err := s.handlers.CreatePatient.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.CreatedResponse{Message: "Patient added", Id: id.Bytes()})
}

// GetPatients handles GET /api/patients.
func (s *Server) GetPatients(c echo.Context) error {
	views, err := s.handlers.GetPatients.Handle(c.Request().Context(), queries.NewGetPatientsQuery())
	if err != nil {
		return err
	}

	patients := make([]servers.Patient, len(views))
	for i, view := range views {
		patients[i] = toPatient(view)
	}
	return c.JSON(http.StatusOK, patients)
}

// GetPatientsWithMeal handles POST /api/patients/with-meal.
func (s *Server) GetPatientsWithMeal(c echo.Context) error {
	req, err := bind[servers.MealTimeRequest](c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPatientsWithMealQuery(string(req.MealTime))
	if err != nil {
		return err
	}

	meals, err := s.handlers.GetPatientsWithMeal.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.PatientsWithMealResponse{Data: make([]servers.PatientMeal, len(meals))}
	for i, meal := range meals {
		response.Data[i] = servers.PatientMeal{
			Patient:     toPatient(meal.Patient),
			MealDetails: toFoodItems(meal.MealDetails),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetMealPlan handles GET /api/meals/:patientId.
func (s *Server) GetMealPlan(c echo.Context, patientID openapi_types.UUID) error {
	id, err := toID("patientId", patientID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMealPlanQuery(id)
	if err != nil {
		return err
	}

	plan, err := s.handlers.GetMealPlan.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, servers.MealPlan{
		PatientId:   plan.PatientID.Bytes(),
		PatientName: plan.PatientName,
		Morning:     toFoodItems(plan.Morning),
		Afternoon:   toFoodItems(plan.Afternoon),
		Night:       toFoodItems(plan.Night),
	})
}

// SaveMealPlan handles POST /api/meals. The plan replaces all three sessions.
func (s *Server) SaveMealPlan(c echo.Context) error {
	req, err := bind[servers.MealPlan](c)
	if err != nil {
		return err
	}

	id, err := toID("patientId", req.PatientId)
	if err != nil {
		return err
	}

	meals := make(map[kernel.Session][]kernel.FoodItem, len(kernel.Sessions()))
	for session, items := range map[kernel.Session][]servers.FoodItem{
		kernel.SessionMorning:   req.Morning,
		kernel.SessionAfternoon: req.Afternoon,
		kernel.SessionNight:     req.Night,
	} {
		if meals[session], err = fromFoodItems(items); err != nil {
			return err
		}
	}

	cmd, err := commands.NewSaveMealPlanCommand(id, meals)
	if err != nil {
		return err
	}

	if err = s.handlers.SaveMealPlan.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, servers.MessageResponse{Message: "Meal plan saved"})
}
