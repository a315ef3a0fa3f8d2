package commands

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
)

// ReserveUnitCommandHandler handles reservations. A reservation is a direct
// status change, recorded with a status-changed audit event.
type ReserveUnitCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewReserveUnitCommandHandler creates a handler for unit reservations.
func NewReserveUnitCommandHandler(uowFactory UnitUoWFactory) ReserveUnitCommandHandler {
	return ReserveUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command.
// Fails with a state conflict unless the unit is available at a branch.
func (h ReserveUnitCommandHandler) Handle(ctx context.Context, cmd ReserveUnitCommand) error {
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

	reserved, err := uow.UnitRepository().GetForUpdate(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	before := reserved.Snapshot()
	if err = reserved.Reserve(cmd.UserID(), now); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, reserved); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		reserved.ID(),
		unit.EventTypeStatusChanged,
		&before,
		reserved.Snapshot(),
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
