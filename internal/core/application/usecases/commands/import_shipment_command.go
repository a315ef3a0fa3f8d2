package commands

import (
	"errors"
	"fmt"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	ErrImportShipmentCommandIsNotConstructed = errors.New(
		"ImportShipmentCommand must be created via NewImportShipmentCommand constructor",
	)
	ErrImportRowsAreRequired = errors.New("at least one import row is required")
)

// ImportRow is one already-parsed line of an import batch. File parsing happens
// upstream; by the time a row reaches this command it is plain data. Units are
// created unidentified, so rows carry no engine or chassis numbers.
type ImportRow struct {
	Brand string
	Model string
	Color string
	Notes string
}

// ImportShipmentCommand represents a request to register an import batch and
// create all of its units in one transaction.
type ImportShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	batchCode       string
	supplierInvoice string
	rows            []ImportRow
	importedBy      kernel.UUID

	guard guard.ConstructorGuard
}

// NewImportShipmentCommand creates a command to import a shipment.
// Validates the batch code, supplier invoice, acting user and that every row
// carries brand, model and color.
func NewImportShipmentCommand(
	shipmentID kernel.UUID,
	batchCode, supplierInvoice string,
	rows []ImportRow,
	importedBy kernel.UUID,
) (ImportShipmentCommand, error) {
	cmd := ImportShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setBatchCode(batchCode),
		cmd.setSupplierInvoice(supplierInvoice),
		cmd.setRows(rows),
		cmd.setImportedBy(importedBy),
	); err != nil {
		return ImportShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportShipmentCommand) Validate() error {
	return c.guard.Validate(ErrImportShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c ImportShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// BatchCode returns the unique batch code.
func (c ImportShipmentCommand) BatchCode() string {
	return c.batchCode
}

// SupplierInvoice returns the supplier invoice reference.
func (c ImportShipmentCommand) SupplierInvoice() string {
	return c.supplierInvoice
}

// Rows returns the parsed import rows.
func (c ImportShipmentCommand) Rows() []ImportRow {
	return c.rows
}

// ImportedBy returns the acting user.
func (c ImportShipmentCommand) ImportedBy() kernel.UUID {
	return c.importedBy
}

func (c *ImportShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *ImportShipmentCommand) setBatchCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("batch_code")
	}

	c.batchCode = code
	return nil
}

func (c *ImportShipmentCommand) setSupplierInvoice(invoice string) error {
	if invoice == "" {
		return errs.NewValueIsRequiredError("supplier_invoice")
	}

	c.supplierInvoice = invoice
	return nil
}

func (c *ImportShipmentCommand) setRows(rows []ImportRow) error {
	if len(rows) == 0 {
		return ErrImportRowsAreRequired
	}

	for i, row := range rows {
		if row.Brand == "" || row.Model == "" || row.Color == "" {
			return errs.NewValueIsRequiredErrorWithCause(
				"rows",
				fmt.Errorf("row %d is missing brand, model or color", i),
			)
		}
	}

	c.rows = rows
	return nil
}

func (c *ImportShipmentCommand) setImportedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.importedBy = id
	return nil
}
