package commands

import (
	"context"
	"errors"

	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/pkg/errs"
)

// LoginResult is the issued bearer token and the member it belongs to.
type LoginResult struct {
	Token string
	Staff *staff.Staff
}

type LoginCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory StaffUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle verifies the credentials and issues a token.
// Unknown emails and wrong passwords both yield ports.ErrInvalidCredentials.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	member, err := uow.StaffRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, ports.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(member.PasswordHash(), cmd.Password()); err != nil {
		return LoginResult{}, err
	}

	token, err := h.issuer.Issue(member)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Staff: member}, nil
}
