package http

import (
	"net/http"

	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/auth/login.
func (s *Server) Login(c echo.Context) error {
	req, err := bind[servers.LoginRequest](c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(string(req.Email), req.Password)
	if err != nil {
		return err
	}

	result, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	member := result.Staff
	role := servers.Role(member.Role().String())
	return c.JSON(http.StatusOK, servers.LoginResponse{
		Success: true,
		Token:   result.Token,
		Role:    role,
		User: servers.StaffMember{
			Id:          member.ID().Bytes(),
			Name:        member.Name(),
			Email:       member.Email(),
			Role:        role,
			ContactInfo: member.ContactInfo(),
			Location:    member.Location().Name(),
			CreatedAt:   member.CreatedAt(),
		},
	})
}
