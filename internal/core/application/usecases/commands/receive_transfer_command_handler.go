package commands

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
)

// ReceiveTransferCommandHandler handles the second phase of a relocation.
// Marks the transfer received and moves the unit to the destination location
// with the arrival status in one transaction.
type ReceiveTransferCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewReceiveTransferCommandHandler creates a handler for transfer reception.
func NewReceiveTransferCommandHandler(uowFactory TransferUoWFactory) ReceiveTransferCommandHandler {
	return ReceiveTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer reception command.
// Fails with a state conflict when the transfer is not in transit, so a
// second reception of the same transfer is rejected.
func (h ReceiveTransferCommandHandler) Handle(ctx context.Context, cmd ReceiveTransferCommand) error {
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

	received, err := uow.TransferRepository().Get(ctx, cmd.TransferID())
	if err != nil {
		return err
	}

	movedUnit, err := uow.UnitRepository().GetForUpdate(ctx, received.UnitID())
	if err != nil {
		return err
	}

	destination, err := uow.LocationRepository().Get(ctx, received.ToLocationID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = received.Receive(cmd.ReceivedBy(), now); err != nil {
		return err
	}

	before := movedUnit.Snapshot()
	if err = movedUnit.ReceiveAt(destination, cmd.ReceivedBy(), now); err != nil {
		return err
	}

	if err = uow.TransferRepository().Update(ctx, received); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, movedUnit); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		movedUnit.ID(),
		unit.EventTypeTransferReceived,
		&before,
		movedUnit.Snapshot(),
		cmd.ReceivedBy(),
		received.Reason(),
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
