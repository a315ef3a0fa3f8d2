package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/shipment"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"
)

// ImportShipmentCommandHandler handles bulk unit intake. Creates the shipment
// row and one unidentified unit per row, each with its imported audit event,
// all inside a single transaction so a failing row aborts the whole batch.
type ImportShipmentCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewImportShipmentCommandHandler creates a handler for shipment imports.
func NewImportShipmentCommandHandler(uowFactory IntakeUoWFactory) ImportShipmentCommandHandler {
	return ImportShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the import command and returns the IDs of the created
// units in row order. Fails with a uniqueness conflict when the batch code was
// already used and with a configuration error when no warehouse exists.
func (h ImportShipmentCommandHandler) Handle(ctx context.Context, cmd ImportShipmentCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.ShipmentRepository().GetByBatchCode(ctx, cmd.BatchCode())
	if err == nil {
		return nil, errs.NewUniquenessConflictError("batch_code", cmd.BatchCode())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	warehouse, err := uow.LocationRepository().GetFirstByType(ctx, location.TypeWarehouse)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewConfigurationMissingErrorWithCause("warehouse location", err)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	batch, err := shipment.NewShipment(cmd.ShipmentID(), cmd.BatchCode(), cmd.SupplierInvoice(), cmd.ImportedBy(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, batch); err != nil {
		return nil, err
	}

	unitIDs := make([]kernel.UUID, 0, len(cmd.Rows()))
	for _, row := range cmd.Rows() {
		newUnit, rowErr := unit.NewUnit(
			kernel.NewUUID(),
			row.Brand, row.Model, row.Color, cmd.SupplierInvoice(),
			batch.ID(),
			warehouse.ID(),
			row.Notes,
			cmd.ImportedBy(),
			now,
		)
		if rowErr != nil {
			return nil, rowErr
		}

		if rowErr = uow.UnitRepository().Add(ctx, newUnit); rowErr != nil {
			return nil, rowErr
		}

		event, rowErr := unit.NewEvent(
			kernel.NewUUID(),
			newUnit.ID(),
			unit.EventTypeImported,
			nil,
			newUnit.Snapshot(),
			cmd.ImportedBy(),
			fmt.Sprintf("imported in batch %s", batch.BatchCode()),
			now,
		)
		if rowErr != nil {
			return nil, rowErr
		}

		if rowErr = uow.EventRepository().Append(ctx, event); rowErr != nil {
			return nil, rowErr
		}

		unitIDs = append(unitIDs, newUnit.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return unitIDs, nil
}
