package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrReserveUnitCommandIsNotConstructed = errors.New(
	"ReserveUnitCommand must be created via NewReserveUnitCommand constructor",
)

// ReserveUnitCommand represents a request to hold an available unit for a
// customer. The hold is released or converted to a sale later.
type ReserveUnitCommand struct { //nolint:recvcheck //using for validation
	unitID kernel.UUID
	reason string
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReserveUnitCommand creates a reservation command. The reason is optional.
func NewReserveUnitCommand(unitID kernel.UUID, reason string, userID kernel.UUID) (ReserveUnitCommand, error) {
	cmd := ReserveUnitCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setUserID(userID),
	); err != nil {
		return ReserveUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveUnitCommand) Validate() error {
	return c.guard.Validate(ErrReserveUnitCommandIsNotConstructed)
}

// UnitID returns the unit to reserve.
func (c ReserveUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Reason returns the optional free-text reason.
func (c ReserveUnitCommand) Reason() string {
	return c.reason
}

// UserID returns the acting user.
func (c ReserveUnitCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ReserveUnitCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.unitID = id
	return nil
}

func (c *ReserveUnitCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
