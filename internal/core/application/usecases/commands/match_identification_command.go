package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrMatchIdentificationCommandIsNotConstructed = errors.New(
	"MatchIdentificationCommand must be created via NewMatchIdentificationCommand constructor",
)

// MatchIdentificationCommand represents a request to bind freshly read engine
// and chassis numbers to the oldest still-unidentified unit, optionally scoped
// to one shipment. The matched unit moves to the workshop.
type MatchIdentificationCommand struct { //nolint:recvcheck //using for validation
	engineNumber  int64
	chassisNumber string
	shipmentID    *kernel.UUID
	userID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewMatchIdentificationCommand creates an identification command.
// The engine number must be positive and the chassis number non-empty.
// shipmentID is optional; nil matches across all shipments.
func NewMatchIdentificationCommand(
	engineNumber int64,
	chassisNumber string,
	shipmentID *kernel.UUID,
	userID kernel.UUID,
) (MatchIdentificationCommand, error) {
	cmd := MatchIdentificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEngineNumber(engineNumber),
		cmd.setChassisNumber(chassisNumber),
		cmd.setShipmentID(shipmentID),
		cmd.setUserID(userID),
	); err != nil {
		return MatchIdentificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MatchIdentificationCommand) Validate() error {
	return c.guard.Validate(ErrMatchIdentificationCommandIsNotConstructed)
}

// EngineNumber returns the engine number read off the physical unit.
func (c MatchIdentificationCommand) EngineNumber() int64 {
	return c.engineNumber
}

// ChassisNumber returns the chassis number read off the physical unit.
func (c MatchIdentificationCommand) ChassisNumber() string {
	return c.chassisNumber
}

// ShipmentID returns the optional shipment scope, or nil.
func (c MatchIdentificationCommand) ShipmentID() *kernel.UUID {
	return c.shipmentID
}

// UserID returns the acting user.
func (c MatchIdentificationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *MatchIdentificationCommand) setEngineNumber(engineNumber int64) error {
	if engineNumber <= 0 {
		return errs.NewValueIsInvalidError("engine_number")
	}

	c.engineNumber = engineNumber
	return nil
}

func (c *MatchIdentificationCommand) setChassisNumber(chassisNumber string) error {
	if chassisNumber == "" {
		return errs.NewValueIsRequiredError("chassis_number")
	}

	c.chassisNumber = chassisNumber
	return nil
}

func (c *MatchIdentificationCommand) setShipmentID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.shipmentID = id
	return nil
}

func (c *MatchIdentificationCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
