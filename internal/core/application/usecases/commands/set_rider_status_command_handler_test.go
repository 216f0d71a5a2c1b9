package commands_test

import (
	"testing"
	"time"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingRider(t *testing.T) *rider.Rider {
	t.Helper()

	r, err := rider.NewRider(
		kernel.NewUUID(), "Applicant", "applicant@example.com", "+8801700000002", "Chattogram",
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return r
}

func newRiderStatusCommand(t *testing.T, riderID kernel.UUID, status rider.Status) commands.SetRiderStatusCommand {
	t.Helper()

	cmd, err := commands.NewSetRiderStatusCommand(riderID, status)
	require.NoError(t, err)

	return cmd
}

func TestSetRiderStatusCommandHandler_Handle_ApproveGrantsRiderRole(t *testing.T) {
	ctx := t.Context()
	testRider := newPendingRider(t)
	cmd := newRiderStatusCommand(t, testRider.ID(), rider.Active)

	account, err := user.NewUser(kernel.NewUUID(), testRider.Email(), "Applicant", time.Now().UTC())
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		riderRepo.On("Get", ctx, testRider.ID()).Return(testRider, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		userRepo.On("GetByEmail", ctx, testRider.Email()).Return(account, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.Active, testRider.Status())
	assert.Equal(t, user.RoleRider, account.Role())
	riderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetRiderStatusCommandHandler_Handle_ApproveWithoutAccount(t *testing.T) {
	ctx := t.Context()
	testRider := newPendingRider(t)
	cmd := newRiderStatusCommand(t, testRider.ID(), rider.Active)

	riderRepo := new(MockRiderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		riderRepo.On("Get", ctx, testRider.ID()).Return(testRider, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		userRepo.On("GetByEmail", ctx, testRider.Email()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.Active, testRider.Status())
	userRepo.AssertNotCalled(t, "Update")
}

func TestSetRiderStatusCommandHandler_Handle_RejectSkipsRoleChange(t *testing.T) {
	ctx := t.Context()
	testRider := newPendingRider(t)
	cmd := newRiderStatusCommand(t, testRider.ID(), rider.Rejected)

	riderRepo := new(MockRiderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		riderRepo.On("Get", ctx, testRider.ID()).Return(testRider, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.Rejected, testRider.Status())
	userRepo.AssertNotCalled(t, "GetByEmail")
}

func TestSetRiderStatusCommandHandler_Handle_RejectedRiderCannotActivate(t *testing.T) {
	ctx := t.Context()
	testRider := newPendingRider(t)
	require.NoError(t, testRider.ChangeStatus(rider.Rejected))
	cmd := newRiderStatusCommand(t, testRider.ID(), rider.Active)

	riderRepo := new(MockRiderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		riderRepo.On("Get", ctx, testRider.ID()).Return(testRider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	riderRepo.AssertNotCalled(t, "Update")
}

func TestSetRiderStatusCommandHandler_Handle_RiderNotFound(t *testing.T) {
	ctx := t.Context()
	riderID := kernel.NewUUID()
	cmd := newRiderStatusCommand(t, riderID, rider.Active)

	riderRepo := new(MockRiderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		riderRepo.On("Get", ctx, riderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRiderNotFound)
}
