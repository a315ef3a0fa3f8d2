package commands

import (
	"context"
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/transfer"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"
)

// InitiateTransferCommandHandler handles the first phase of a relocation.
// Creates the transfer record and moves the unit into the in-transit status
// atomically. The unit row is locked for the duration of the transaction, so a
// concurrent sale or second transfer observes the committed in-transit state.
type InitiateTransferCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewInitiateTransferCommandHandler creates a handler for transfer initiation.
func NewInitiateTransferCommandHandler(uowFactory TransferUoWFactory) InitiateTransferCommandHandler {
	return InitiateTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer initiation command.
// Rejects the request when the unit already has an active transfer, when the
// unit is not at the declared source, or when no in-transit status is defined
// for the source/destination type pair.
func (h InitiateTransferCommandHandler) Handle(ctx context.Context, cmd InitiateTransferCommand) error {
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

	movedUnit, err := uow.UnitRepository().GetForUpdate(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	active, err := uow.TransferRepository().GetActiveByUnit(ctx, cmd.UnitID())
	if err == nil {
		return errs.NewStateConflictError("transfer", active.Status().String(), "initiate another transfer")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	from, err := uow.LocationRepository().Get(ctx, cmd.FromLocationID())
	if err != nil {
		return err
	}

	to, err := uow.LocationRepository().Get(ctx, cmd.ToLocationID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	before := movedUnit.Snapshot()
	if err = movedUnit.InitiateTransfer(from, to, cmd.CreatedBy(), now); err != nil {
		return err
	}

	newTransfer, err := transfer.NewTransfer(
		cmd.TransferID(),
		cmd.UnitID(),
		cmd.FromLocationID(), cmd.ToLocationID(),
		cmd.ETA(),
		cmd.Reason(),
		cmd.CreatedBy(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.TransferRepository().Add(ctx, newTransfer); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, movedUnit); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		movedUnit.ID(),
		unit.EventTypeTransferInitiated,
		&before,
		movedUnit.Snapshot(),
		cmd.CreatedBy(),
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
