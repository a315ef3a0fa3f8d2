package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/sale"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"
)

// SellUnitCommandHandler handles the terminal sale workflow.
// Preconditions are checked in a fixed order: the unit exists, its status
// allows selling, no sale exists for it yet, and the receipt is unused. The
// unit row is locked from the first read, so of two concurrent sales of the
// same unit exactly one commits and the other fails with a state conflict.
type SellUnitCommandHandler struct {
	uowFactory SaleUoWFactory
}

// NewSellUnitCommandHandler creates a handler for unit sales.
func NewSellUnitCommandHandler(uowFactory SaleUoWFactory) SellUnitCommandHandler {
	return SellUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sale command.
// The sale is recorded at the branch named by the command, timestamped with
// the command's sale time when given and the processing time otherwise.
func (h SellUnitCommandHandler) Handle(ctx context.Context, cmd SellUnitCommand) error {
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

	soldUnit, err := uow.UnitRepository().GetForUpdate(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	before := soldUnit.Snapshot()
	if err = soldUnit.MarkSold(cmd.SoldBy(), now); err != nil {
		return err
	}

	_, err = uow.SaleRepository().GetByUnit(ctx, cmd.UnitID())
	if err == nil {
		return errs.NewStateConflictError("unit", "already sold", "sell unit again")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	_, err = uow.SaleRepository().GetByReceipt(ctx, cmd.Receipt())
	if err == nil {
		return errs.NewUniquenessConflictError("receipt", cmd.Receipt())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	soldAt := now
	if cmd.SoldAt() != nil {
		soldAt = *cmd.SoldAt()
	}

	newSale, err := sale.NewSale(
		cmd.SaleID(),
		cmd.UnitID(),
		cmd.Receipt(),
		cmd.SoldBy(),
		cmd.BranchID(),
		soldAt,
		cmd.CustomerName(),
	)
	if err != nil {
		return err
	}

	if err = uow.SaleRepository().Add(ctx, newSale); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, soldUnit); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		soldUnit.ID(),
		unit.EventTypeSold,
		&before,
		soldUnit.Snapshot(),
		cmd.SoldBy(),
		fmt.Sprintf("sold with receipt %s", cmd.Receipt()),
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
