package commands_test

import (
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddUnitNoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	branch := newTestLocation(t, location.TypeBranch)
	testUnit := newTestUnit(t, unit.StatusAvailableAtBranch, branch.ID())

	cmd, err := commands.NewAddUnitNoteCommand(testUnit.ID(), "front tire replaced", kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUnitUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("GetForUpdate", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", ctx, mock.AnythingOfType("*unit.Unit")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", ctx, mock.AnythingOfType("*unit.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddUnitNoteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "front tire replaced", testUnit.Notes())

	appendedEvent := eventRepo.Calls[0].Arguments[1].(*unit.Event)
	assert.Equal(t, unit.EventTypeNoteAdded, appendedEvent.Type())
	assert.Equal(t, "front tire replaced", appendedEvent.Reason())

	unitRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddUnitNoteCommand_EmptyNote(t *testing.T) {
	_, err := commands.NewAddUnitNoteCommand(kernel.NewUUID(), "", kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
