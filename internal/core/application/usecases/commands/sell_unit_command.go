package commands

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrSellUnitCommandIsNotConstructed = errors.New(
	"SellUnitCommand must be created via NewSellUnitCommand constructor",
)

// SellUnitCommand represents a request to sell a unit at a branch.
// Selling is terminal: the unit reaches the sold status and a sale record with
// a globally unique receipt is written.
type SellUnitCommand struct { //nolint:recvcheck //using for validation
	saleID       kernel.UUID
	unitID       kernel.UUID
	receipt      string
	soldBy       kernel.UUID
	branchID     kernel.UUID
	customerName *string
	soldAt       *time.Time

	guard guard.ConstructorGuard
}

// NewSellUnitCommand creates a sale command.
// The receipt must be non-empty; the customer name is optional. A nil soldAt
// records the sale at processing time, a non-nil one backdates it.
func NewSellUnitCommand(
	saleID kernel.UUID,
	unitID kernel.UUID,
	receipt string,
	soldBy kernel.UUID,
	branchID kernel.UUID,
	customerName *string,
	soldAt *time.Time,
) (SellUnitCommand, error) {
	cmd := SellUnitCommand{
		customerName: customerName,
		soldAt:       soldAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSaleID(saleID),
		cmd.setUnitID(unitID),
		cmd.setReceipt(receipt),
		cmd.setSoldBy(soldBy),
		cmd.setBranchID(branchID),
	); err != nil {
		return SellUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SellUnitCommand) Validate() error {
	return c.guard.Validate(ErrSellUnitCommandIsNotConstructed)
}

// SaleID returns the identifier for the new sale record.
func (c SellUnitCommand) SaleID() kernel.UUID {
	return c.saleID
}

// UnitID returns the unit being sold.
func (c SellUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Receipt returns the receipt number.
func (c SellUnitCommand) Receipt() string {
	return c.receipt
}

// CustomerName returns the optional customer name.
func (c SellUnitCommand) CustomerName() *string {
	return c.customerName
}

// SoldBy returns the acting user.
func (c SellUnitCommand) SoldBy() kernel.UUID {
	return c.soldBy
}

// BranchID returns the branch the sale is recorded at.
func (c SellUnitCommand) BranchID() kernel.UUID {
	return c.branchID
}

// SoldAt returns the optional sale timestamp.
func (c SellUnitCommand) SoldAt() *time.Time {
	return c.soldAt
}

func (c *SellUnitCommand) setSaleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.saleID = id
	return nil
}

func (c *SellUnitCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.unitID = id
	return nil
}

func (c *SellUnitCommand) setReceipt(receipt string) error {
	if receipt == "" {
		return errs.NewValueIsRequiredError("receipt")
	}

	c.receipt = receipt
	return nil
}

func (c *SellUnitCommand) setSoldBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.soldBy = id
	return nil
}

func (c *SellUnitCommand) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.branchID = id
	return nil
}
