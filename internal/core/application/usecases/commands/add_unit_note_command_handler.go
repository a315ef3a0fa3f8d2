package commands

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
)

// AddUnitNoteCommandHandler appends a note to a unit with a note-added audit
// event carrying the note text as its reason.
type AddUnitNoteCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewAddUnitNoteCommandHandler creates a handler for unit notes.
func NewAddUnitNoteCommandHandler(uowFactory UnitUoWFactory) AddUnitNoteCommandHandler {
	return AddUnitNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note command.
func (h AddUnitNoteCommandHandler) Handle(ctx context.Context, cmd AddUnitNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	annotated, err := uow.UnitRepository().GetForUpdate(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	before := annotated.Snapshot()
	if err = annotated.AddNote(cmd.Note(), cmd.UserID(), now); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, annotated); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		annotated.ID(),
		unit.EventTypeNoteAdded,
		&before,
		annotated.Snapshot(),
		cmd.UserID(),
		cmd.Note(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
