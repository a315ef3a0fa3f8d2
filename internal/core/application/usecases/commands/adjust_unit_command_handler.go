package commands

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
)

// AdjustUnitCommandHandler handles descriptive-field edits with an adjusted
// audit event.
type AdjustUnitCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewAdjustUnitCommandHandler creates a handler for unit adjustments.
func NewAdjustUnitCommandHandler(uowFactory UnitUoWFactory) AdjustUnitCommandHandler {
	return AdjustUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment command.
func (h AdjustUnitCommandHandler) Handle(ctx context.Context, cmd AdjustUnitCommand) error {
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

	adjusted, err := uow.UnitRepository().GetForUpdate(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	before := adjusted.Snapshot()
	if err = adjusted.Adjust(cmd.Adjustment(), cmd.UserID(), now); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, adjusted); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		adjusted.ID(),
		unit.EventTypeAdjusted,
		&before,
		adjusted.Snapshot(),
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
