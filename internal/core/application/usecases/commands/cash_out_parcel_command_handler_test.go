package commands_test

import (
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveredParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p := newAssignedParcel(t)

	changed, err := p.ChangeDeliveryStatus(parcel.InTransit)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = p.ChangeDeliveryStatus(parcel.Delivered)
	require.NoError(t, err)
	require.True(t, changed)

	return p
}

func newCashOutCommand(t *testing.T, parcelID kernel.UUID, amount int64) commands.CashOutParcelCommand {
	t.Helper()

	cmd, err := commands.NewCashOutParcelCommand(parcelID, amount)
	require.NoError(t, err)

	return cmd
}

func TestCashOutParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testParcel := newDeliveredParcel(t)
	cmd := newCashOutCommand(t, testParcel.ID(), 2400)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashOutParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.CashedOut, testParcel.CashoutStatus())
	assert.Equal(t, int64(2400), testParcel.CashoutAmount())
	require.NotNil(t, testParcel.CashoutAt())
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCashOutParcelCommandHandler_Handle_NotDeliveredConflict(t *testing.T) {
	ctx := t.Context()
	testParcel := newAssignedParcel(t)
	cmd := newCashOutCommand(t, testParcel.ID(), 2400)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashOutParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, parcel.CashoutNone, testParcel.CashoutStatus())
	parcelRepo.AssertNotCalled(t, "Update")
}

func TestCashOutParcelCommandHandler_Handle_SecondCashoutConflict(t *testing.T) {
	ctx := t.Context()
	testParcel := newDeliveredParcel(t)
	cmd := newCashOutCommand(t, testParcel.ID(), 2400)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("ParcelRepository").Return(parcelRepo).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)
	parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Times(2)
	parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	handler := commands.NewCashOutParcelCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))

	err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, int64(2400), testParcel.CashoutAmount())
}

func TestCashOutParcelCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd := newCashOutCommand(t, parcelID, 2400)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashOutParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrParcelNotFound)
}

func TestNewCashOutParcelCommand_InvalidAmount(t *testing.T) {
	_, err := commands.NewCashOutParcelCommand(kernel.NewUUID(), 0)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCashoutAmountIsInvalid)
}
