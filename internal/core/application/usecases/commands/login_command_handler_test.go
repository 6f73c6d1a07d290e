package commands_test

import (
	"errors"
	"testing"

	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewLoginCommand(t *testing.T) {
	t.Run("should normalize email", func(t *testing.T) {
		cmd, err := commands.NewLoginCommand(" Nurse@Hospital.TEST ", "secret")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "nurse@hospital.test", cmd.Email())
	})

	t.Run("should require email and password", func(t *testing.T) {
		_, err := commands.NewLoginCommand("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		assert.Equal(t, commands.ErrLoginCommandIsNotConstructed, commands.LoginCommand{}.Validate())
	})
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	t.Run("should issue token for valid credentials", func(t *testing.T) {
		ctx := t.Context()
		member := newMember(t, staff.RolePantryStaff, "Main Kitchen")
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		hasher := new(MockHasher)
		issuer := new(MockTokenIssuer)

		mock.InOrder(
			uow.On("StaffRepository").Return(repo).Once(),
			repo.On("GetByEmail", ctx, member.Email()).Return(member, nil).Once(),
			hasher.On("Compare", "stored-hash", "secret").Return(nil).Once(),
			issuer.On("Issue", member).Return("signed.jwt.token", nil).Once(),
		)

		handler := commands.NewLoginCommandHandler(staffUoWFactory{uow}, hasher, issuer)
		cmd, err := commands.NewLoginCommand(member.Email(), "secret")
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", result.Token)
		assert.Same(t, member, result.Staff)
		mock.AssertExpectationsForObjects(t, uow, repo, hasher, issuer)
	})

	t.Run("should hide unknown email behind invalid credentials", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		uow.On("StaffRepository").Return(repo).Once()
		repo.On("GetByEmail", ctx, "ghost@hospital.test").
			Return(nil, errs.NewObjectNotFoundError("staff", "ghost@hospital.test")).Once()

		handler := commands.NewLoginCommandHandler(staffUoWFactory{uow}, new(MockHasher), new(MockTokenIssuer))
		cmd, err := commands.NewLoginCommand("ghost@hospital.test", "secret")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		ctx := t.Context()
		member := newMember(t, staff.RoleDelivery, "Ward 3")
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		hasher := new(MockHasher)
		issuer := new(MockTokenIssuer)
		uow.On("StaffRepository").Return(repo).Once()
		repo.On("GetByEmail", ctx, member.Email()).Return(member, nil).Once()
		hasher.On("Compare", "stored-hash", "wrong").Return(ports.ErrInvalidCredentials).Once()

		handler := commands.NewLoginCommandHandler(staffUoWFactory{uow}, hasher, issuer)
		cmd, err := commands.NewLoginCommand(member.Email(), "wrong")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, ports.ErrInvalidCredentials)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("should pass through storage failures", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		uow.On("StaffRepository").Return(repo).Once()
		repo.On("GetByEmail", ctx, "a@hospital.test").Return(nil, errors.New("connection reset")).Once()

		handler := commands.NewLoginCommandHandler(staffUoWFactory{uow}, new(MockHasher), new(MockTokenIssuer))
		cmd, err := commands.NewLoginCommand("a@hospital.test", "secret")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ports.ErrInvalidCredentials)
	})
}
