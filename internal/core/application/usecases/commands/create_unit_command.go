package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrCreateUnitCommandIsNotConstructed = errors.New(
	"CreateUnitCommand must be created via NewCreateUnitCommand constructor",
)

// CreateUnitCommand represents a request to register a single unit manually,
// outside a bulk import. The unit starts unidentified at the warehouse.
//
// Example:
//
//	unitID := kernel.NewUUID()
//	cmd, err := NewCreateUnitCommand(unitID, "Honda", "CB190R", "red", "INV-001", shipmentID, "", userID)
//	if err != nil {
//	    return fmt.Errorf("invalid unit data: %w", err)
//	}
//
//	handler := NewCreateUnitCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create unit: %w", err)
//	}
type CreateUnitCommand struct { //nolint:recvcheck //using for validation
	unitID          kernel.UUID
	brand           string
	model           string
	color           string
	supplierInvoice string
	shipmentID      kernel.UUID
	notes           string
	createdBy       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateUnitCommand creates a command to register a new unit.
// Validates identifiers and that brand, model, color and supplier invoice are
// not empty. Notes may be empty.
func NewCreateUnitCommand(
	unitID kernel.UUID,
	brand, model, color, supplierInvoice string,
	shipmentID kernel.UUID,
	notes string,
	createdBy kernel.UUID,
) (CreateUnitCommand, error) {
	cmd := CreateUnitCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setBrand(brand),
		cmd.setModel(model),
		cmd.setColor(color),
		cmd.setSupplierInvoice(supplierInvoice),
		cmd.setShipmentID(shipmentID),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUnitCommand) Validate() error {
	return c.guard.Validate(ErrCreateUnitCommandIsNotConstructed)
}

// UnitID returns the identifier for the new unit.
func (c CreateUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Brand returns the manufacturer brand.
func (c CreateUnitCommand) Brand() string {
	return c.brand
}

// Model returns the model designation.
func (c CreateUnitCommand) Model() string {
	return c.model
}

// Color returns the color description.
func (c CreateUnitCommand) Color() string {
	return c.color
}

// SupplierInvoice returns the supplier invoice reference.
func (c CreateUnitCommand) SupplierInvoice() string {
	return c.supplierInvoice
}

// ShipmentID returns the import batch the unit is attributed to.
func (c CreateUnitCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Notes returns the optional free-text notes.
func (c CreateUnitCommand) Notes() string {
	return c.notes
}

// CreatedBy returns the acting user.
func (c CreateUnitCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateUnitCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.unitID = id
	return nil
}

func (c *CreateUnitCommand) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}

	c.brand = brand
	return nil
}

func (c *CreateUnitCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *CreateUnitCommand) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}

	c.color = color
	return nil
}

func (c *CreateUnitCommand) setSupplierInvoice(invoice string) error {
	if invoice == "" {
		return errs.NewValueIsRequiredError("supplier_invoice")
	}

	c.supplierInvoice = invoice
	return nil
}

func (c *CreateUnitCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *CreateUnitCommand) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.createdBy = id
	return nil
}
