package commands

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
)

// ReleaseUnitCommandHandler handles reservation releases, the inverse of
// ReserveUnitCommandHandler.
type ReleaseUnitCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewReleaseUnitCommandHandler creates a handler for reservation releases.
func NewReleaseUnitCommandHandler(uowFactory UnitUoWFactory) ReleaseUnitCommandHandler {
	return ReleaseUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command.
// Fails with a state conflict unless the unit is reserved.
func (h ReleaseUnitCommandHandler) Handle(ctx context.Context, cmd ReleaseUnitCommand) error {
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

	released, err := uow.UnitRepository().GetForUpdate(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	before := released.Snapshot()
	if err = released.Release(cmd.UserID(), now); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, released); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		released.ID(),
		unit.EventTypeStatusChanged,
		&before,
		released.Snapshot(),
		cmd.UserID(),
		cmd.Reason(),
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
