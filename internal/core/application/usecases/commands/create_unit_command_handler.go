package commands

import (
	"context"
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"
)

// CreateUnitCommandHandler handles manual unit registration.
// Places the new unit at the configured warehouse in the unidentified status
// and writes the creation audit event in the same transaction.
type CreateUnitCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateUnitCommandHandler creates a handler for manual unit registration.
func NewCreateUnitCommandHandler(uowFactory IntakeUoWFactory) CreateUnitCommandHandler {
	return CreateUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unit creation command.
// Verifies the referenced shipment exists and resolves the warehouse location.
// A missing warehouse is a configuration fault, not a user error.
func (h CreateUnitCommandHandler) Handle(ctx context.Context, cmd CreateUnitCommand) error {
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

	if _, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	warehouse, err := uow.LocationRepository().GetFirstByType(ctx, location.TypeWarehouse)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewConfigurationMissingErrorWithCause("warehouse location", err)
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	newUnit, err := unit.NewUnit(
		cmd.UnitID(),
		cmd.Brand(), cmd.Model(), cmd.Color(), cmd.SupplierInvoice(),
		cmd.ShipmentID(),
		warehouse.ID(),
		cmd.Notes(),
		cmd.CreatedBy(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.UnitRepository().Add(ctx, newUnit); err != nil {
		return err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		newUnit.ID(),
		unit.EventTypeCreated,
		nil,
		newUnit.Snapshot(),
		cmd.CreatedBy(),
		"manual registration",
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
