package commands_test

import (
	"testing"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/transfer"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitiateTransferCommandHandler_Handle_WorkshopToBranch(t *testing.T) {
	ctx := t.Context()

	workshop := newTestLocation(t, location.TypeWorkshop)
	branch := newTestLocation(t, location.TypeBranch)
	testUnit := newTestUnit(t, unit.StatusIdentifiedInWorkshop, workshop.ID())
	userID := kernel.NewUUID()

	eta := time.Now().UTC().Add(48 * time.Hour)
	cmd, err := commands.NewInitiateTransferCommand(
		kernel.NewUUID(), testUnit.ID(), workshop.ID(), branch.ID(), &eta, "stocking the branch", userID,
	)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	locationRepo := new(MockLocationRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockTransferUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("GetForUpdate", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("GetActiveByUnit", ctx, testUnit.ID()).
			Return(nil, errs.NewObjectNotFoundError("transfer", testUnit.ID())).
			Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, workshop.ID()).Return(workshop, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, branch.ID()).Return(branch, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Add", ctx, mock.AnythingOfType("*transfer.Transfer")).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", ctx, mock.AnythingOfType("*unit.Unit")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", ctx, mock.AnythingOfType("*unit.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateTransferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, unit.StatusInTransitWorkshopToBranch, testUnit.Status())
	// Location changes only on reception.
	assert.True(t, testUnit.LocationID().IsEqual(workshop.ID()))

	addedTransfer := transferRepo.Calls[1].Arguments[1].(*transfer.Transfer)
	assert.Equal(t, transfer.StatusInTransit, addedTransfer.Status())
	assert.True(t, addedTransfer.UnitID().IsEqual(testUnit.ID()))

	appendedEvent := eventRepo.Calls[0].Arguments[1].(*unit.Event)
	assert.Equal(t, unit.EventTypeTransferInitiated, appendedEvent.Type())
	assert.Equal(t, "stocking the branch", appendedEvent.Reason())

	unitRepo.AssertExpectations(t)
	transferRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestInitiateTransferCommandHandler_Handle_ActiveTransferExists(t *testing.T) {
	ctx := t.Context()

	workshop := newTestLocation(t, location.TypeWorkshop)
	branch := newTestLocation(t, location.TypeBranch)
	testUnit := newTestUnit(t, unit.StatusInTransitWorkshopToBranch, workshop.ID())

	activeTransfer, err := transfer.NewTransfer(
		kernel.NewUUID(), testUnit.ID(), workshop.ID(), branch.ID(), nil, "", kernel.NewUUID(), time.Now().UTC(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewInitiateTransferCommand(
		kernel.NewUUID(), testUnit.ID(), workshop.ID(), branch.ID(), nil, "", kernel.NewUUID(),
	)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	uow := new(MockTransferUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("GetForUpdate", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("GetActiveByUnit", ctx, testUnit.ID()).Return(activeTransfer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateTransferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestInitiateTransferCommandHandler_Handle_UndefinedRoute(t *testing.T) {
	ctx := t.Context()

	warehouse := newTestLocation(t, location.TypeWarehouse)
	branch := newTestLocation(t, location.TypeBranch)
	testUnit := newTestUnit(t, unit.StatusUnidentifiedInWarehouse, warehouse.ID())

	cmd, err := commands.NewInitiateTransferCommand(
		kernel.NewUUID(), testUnit.ID(), warehouse.ID(), branch.ID(), nil, "", kernel.NewUUID(),
	)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	locationRepo := new(MockLocationRepository)
	uow := new(MockTransferUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("GetForUpdate", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("GetActiveByUnit", ctx, testUnit.ID()).
			Return(nil, errs.NewObjectNotFoundError("transfer", testUnit.ID())).
			Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, warehouse.ID()).Return(warehouse, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, branch.ID()).Return(branch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateTransferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, unit.StatusUnidentifiedInWarehouse, testUnit.Status())
}

func TestInitiateTransferCommandHandler_Handle_UnitNotAtSource(t *testing.T) {
	ctx := t.Context()

	workshop := newTestLocation(t, location.TypeWorkshop)
	otherWorkshop := newTestLocation(t, location.TypeWorkshop)
	branch := newTestLocation(t, location.TypeBranch)
	testUnit := newTestUnit(t, unit.StatusIdentifiedInWorkshop, otherWorkshop.ID())

	cmd, err := commands.NewInitiateTransferCommand(
		kernel.NewUUID(), testUnit.ID(), workshop.ID(), branch.ID(), nil, "", kernel.NewUUID(),
	)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	locationRepo := new(MockLocationRepository)
	uow := new(MockTransferUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("GetForUpdate", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("GetActiveByUnit", ctx, testUnit.ID()).
			Return(nil, errs.NewObjectNotFoundError("transfer", testUnit.ID())).
			Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, workshop.ID()).Return(workshop, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, branch.ID()).Return(branch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateTransferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
