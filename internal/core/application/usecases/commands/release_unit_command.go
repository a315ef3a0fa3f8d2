package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrReleaseUnitCommandIsNotConstructed = errors.New(
	"ReleaseUnitCommand must be created via NewReleaseUnitCommand constructor",
)

// ReleaseUnitCommand represents a request to return a reserved unit to the
// available status.
type ReleaseUnitCommand struct { //nolint:recvcheck //using for validation
	unitID kernel.UUID
	reason string
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseUnitCommand creates a release command. The reason is optional.
func NewReleaseUnitCommand(unitID kernel.UUID, reason string, userID kernel.UUID) (ReleaseUnitCommand, error) {
	cmd := ReleaseUnitCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setUserID(userID),
	); err != nil {
		return ReleaseUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseUnitCommand) Validate() error {
	return c.guard.Validate(ErrReleaseUnitCommandIsNotConstructed)
}

// UnitID returns the unit to release.
func (c ReleaseUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Reason returns the optional free-text reason.
func (c ReleaseUnitCommand) Reason() string {
	return c.reason
}

// UserID returns the acting user.
func (c ReleaseUnitCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ReleaseUnitCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.unitID = id
	return nil
}

func (c *ReleaseUnitCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
