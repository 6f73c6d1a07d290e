package http

import (
	"net/http"

	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterStaff handles POST /api/staff. Pantry staff may only add delivery personnel.
func (s *Server) RegisterStaff(c echo.Context) error {
	req, err := bind[servers.RegisterStaffRequest](c)
	if err != nil {
		return err
	}
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	role, err := staff.ParseRole(string(req.Role))
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterStaffCommand(actor.Role, req.Name, string(req.Email), req.Password, role,
		req.ContactInfo, req.Location)
	if err != nil {
		return err
	}

	id, err := s.handlers.RegisterStaff.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.CreatedResponse{Message: "Staff member registered", Id: id.Bytes()})
}

// GetStaff handles GET /api/staff?role=.
func (s *Server) GetStaff(c echo.Context, params servers.GetStaffParams) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var role string
	if params.Role != nil {
		role = string(*params.Role)
	}

	query, err := queries.NewGetStaffQuery(role, actor.Role)
	if err != nil {
		return err
	}

	members, err := s.handlers.GetStaff.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toStaffList(members))
}

// GetUniqueLocationsByRole handles POST /api/users/locations.
func (s *Server) GetUniqueLocationsByRole(c echo.Context) error {
	req, err := bind[servers.RoleRequest](c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUniqueLocationsByRoleQuery(string(req.Role))
	if err != nil {
		return err
	}

	locations, err := s.handlers.GetUniqueLocationsByRole.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	if locations == nil {
		locations = []string{}
	}
	return c.JSON(http.StatusOK, servers.LocationsResponse{UniqueLocations: locations})
}

// GetUsersByLocationAndRole handles POST /api/users/by-location.
// Emails are left out; callers only need a name to pick.
func (s *Server) GetUsersByLocationAndRole(c echo.Context) error {
	req, err := bind[servers.LocationRoleRequest](c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUsersByLocationAndRoleQuery(string(req.Role), req.Location)
	if err != nil {
		return err
	}

	members, err := s.handlers.GetUsersByLocationAndRole.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	users := toStaffList(members)
	for i := range users {
		users[i].Email = ""
	}
	return c.JSON(http.StatusOK, users)
}
