package commands

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrInitiateTransferCommandIsNotConstructed = errors.New(
	"InitiateTransferCommand must be created via NewInitiateTransferCommand constructor",
)

// InitiateTransferCommand represents a request to start relocating a unit from
// its current location to a destination. The unit enters the in-transit status
// for the route; its physical location changes only on reception.
type InitiateTransferCommand struct { //nolint:recvcheck //using for validation
	transferID     kernel.UUID
	unitID         kernel.UUID
	fromLocationID kernel.UUID
	toLocationID   kernel.UUID
	eta            *time.Time
	reason         string
	createdBy      kernel.UUID

	guard guard.ConstructorGuard
}

// NewInitiateTransferCommand creates a transfer initiation command.
// All identifiers must be valid; eta and reason are optional.
func NewInitiateTransferCommand(
	transferID kernel.UUID,
	unitID kernel.UUID,
	fromLocationID, toLocationID kernel.UUID,
	eta *time.Time,
	reason string,
	createdBy kernel.UUID,
) (InitiateTransferCommand, error) {
	cmd := InitiateTransferCommand{
		eta:    eta,
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransferID(transferID),
		cmd.setUnitID(unitID),
		cmd.setFromLocationID(fromLocationID),
		cmd.setToLocationID(toLocationID),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return InitiateTransferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiateTransferCommand) Validate() error {
	return c.guard.Validate(ErrInitiateTransferCommandIsNotConstructed)
}

// TransferID returns the identifier for the new transfer.
func (c InitiateTransferCommand) TransferID() kernel.UUID {
	return c.transferID
}

// UnitID returns the unit to relocate.
func (c InitiateTransferCommand) UnitID() kernel.UUID {
	return c.unitID
}

// FromLocationID returns the source location.
func (c InitiateTransferCommand) FromLocationID() kernel.UUID {
	return c.fromLocationID
}

// ToLocationID returns the destination location.
func (c InitiateTransferCommand) ToLocationID() kernel.UUID {
	return c.toLocationID
}

// ETA returns the optional estimated arrival time.
func (c InitiateTransferCommand) ETA() *time.Time {
	return c.eta
}

// Reason returns the optional free-text reason.
func (c InitiateTransferCommand) Reason() string {
	return c.reason
}

// CreatedBy returns the acting user.
func (c InitiateTransferCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *InitiateTransferCommand) setTransferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.transferID = id
	return nil
}

func (c *InitiateTransferCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.unitID = id
	return nil
}

func (c *InitiateTransferCommand) setFromLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.fromLocationID = id
	return nil
}

func (c *InitiateTransferCommand) setToLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.toLocationID = id
	return nil
}

func (c *InitiateTransferCommand) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.createdBy = id
	return nil
}
