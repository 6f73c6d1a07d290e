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
	"go.uber.org/zap"
)

func TestNewRegisterStaffCommand(t *testing.T) {
	t.Run("should let pantry staff register delivery personnel", func(t *testing.T) {
		cmd, err := commands.NewRegisterStaffCommand(staff.RolePantryStaff, "Ruslan", "Ruslan@Hospital.test",
			"password1", staff.RoleDelivery, "555", "Ward 3")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ruslan@hospital.test", cmd.Email())
		assert.Equal(t, "Ward 3", cmd.Location().Name())
		assert.NoError(t, cmd.StaffID().Validate())
	})

	t.Run("should deny pantry staff registering managers", func(t *testing.T) {
		_, err := commands.NewRegisterStaffCommand(staff.RolePantryStaff, "Boss", "boss@hospital.test",
			"password1", staff.RoleManager, "", "HQ")

		require.ErrorIs(t, err, ports.ErrAccessDenied)
	})

	t.Run("should reject short password and blank location", func(t *testing.T) {
		_, err := commands.NewRegisterStaffCommand(staff.RoleManager, "Ruslan", "r@hospital.test",
			"short", staff.RoleDelivery, "", " ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})
}

func TestRegisterStaffCommandHandler_Handle(t *testing.T) {
	newCmd := func(t *testing.T) commands.RegisterStaffCommand {
		t.Helper()
		cmd, err := commands.NewRegisterStaffCommand(staff.RoleManager, "Ruslan", "ruslan@hospital.test",
			"password1", staff.RoleDelivery, "555", "Ward 3")
		require.NoError(t, err)
		return cmd
	}

	t.Run("should hash password, store member and drop cached locations", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCmd(t)
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		hasher := new(MockHasher)
		cache := new(MockLocationCache)

		mock.InOrder(
			hasher.On("Hash", "password1").Return("bcrypt-hash", nil).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("StaffRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.MatchedBy(func(s *staff.Staff) bool {
				return s.PasswordHash() == "bcrypt-hash" && s.Role() == staff.RoleDelivery && s.ID().IsEqual(cmd.StaffID())
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			cache.On("Invalidate", ctx, staff.RoleDelivery).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewRegisterStaffCommandHandler(staffUoWFactory{uow}, hasher, cache, zap.NewNop())

		id, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(cmd.StaffID()))
		mock.AssertExpectationsForObjects(t, uow, repo, hasher, cache)
	})

	t.Run("should surface duplicate email without touching the cache", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		hasher := new(MockHasher)
		cache := new(MockLocationCache)
		hasher.On("Hash", "password1").Return("bcrypt-hash", nil).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("StaffRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.Anything).Return(ports.ErrEmailTaken).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewRegisterStaffCommandHandler(staffUoWFactory{uow}, hasher, cache, zap.NewNop())

		_, err := handler.Handle(ctx, newCmd(t))

		require.ErrorIs(t, err, ports.ErrEmailTaken)
		uow.AssertNotCalled(t, "Commit", ctx)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("should succeed even if cache invalidation fails", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		hasher := new(MockHasher)
		cache := new(MockLocationCache)
		hasher.On("Hash", "password1").Return("bcrypt-hash", nil).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("StaffRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		cache.On("Invalidate", ctx, staff.RoleDelivery).Return(errors.New("redis down")).Once()

		handler := commands.NewRegisterStaffCommandHandler(staffUoWFactory{uow}, hasher, cache, zap.NewNop())

		_, err := handler.Handle(ctx, newCmd(t))

		require.NoError(t, err)
	})
}

func TestEnsureManagerCommandHandler_Handle(t *testing.T) {
	newHandler := func(uow *MockUoW, hasher *MockHasher, cache *MockLocationCache) commands.EnsureManagerCommandHandler {
		register := commands.NewRegisterStaffCommandHandler(staffUoWFactory{uow}, hasher, cache, zap.NewNop())
		return commands.NewEnsureManagerCommandHandler(staffUoWFactory{uow}, register)
	}

	t.Run("should skip when a manager exists", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		uow.On("StaffRepository").Return(repo).Once()
		repo.On("HasRole", ctx, staff.RoleManager).Return(true, nil).Once()

		handler := newHandler(uow, new(MockHasher), new(MockLocationCache))
		cmd, err := commands.NewEnsureManagerCommand("Admin", "admin@hospital.test", "password1", "Administration")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, created)
		uow.AssertNotCalled(t, "Begin", ctx)
	})

	t.Run("should create the first manager", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockStaffRepository)
		uow := new(MockUoW)
		hasher := new(MockHasher)
		cache := new(MockLocationCache)
		uow.On("StaffRepository").Return(repo)
		repo.On("HasRole", ctx, staff.RoleManager).Return(false, nil).Once()
		hasher.On("Hash", "password1").Return("bcrypt-hash", nil).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("Add", ctx, mock.MatchedBy(func(s *staff.Staff) bool {
			return s.Role() == staff.RoleManager && s.Email() == "admin@hospital.test"
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		cache.On("Invalidate", ctx, staff.RoleManager).Return(nil).Once()

		handler := newHandler(uow, hasher, cache)
		cmd, err := commands.NewEnsureManagerCommand("Admin", "admin@hospital.test", "password1", "Administration")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, created)
		mock.AssertExpectationsForObjects(t, repo, hasher, cache)
	})
}
