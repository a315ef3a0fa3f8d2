package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/guard"
)

var (
	ErrAdjustUnitCommandIsNotConstructed = errors.New(
		"AdjustUnitCommand must be created via NewAdjustUnitCommand constructor",
	)
	ErrAdjustmentIsEmpty = errors.New("at least one field to adjust is required")
)

// AdjustUnitCommand represents a request to edit a unit's descriptive fields.
// Status, location and identification numbers are out of reach; those change
// only through their own workflows.
type AdjustUnitCommand struct { //nolint:recvcheck //using for validation
	unitID     kernel.UUID
	adjustment unit.Adjustment
	reason     string
	userID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdjustUnitCommand creates an adjustment command.
// At least one field of the adjustment must be set.
func NewAdjustUnitCommand(
	unitID kernel.UUID,
	adjustment unit.Adjustment,
	reason string,
	userID kernel.UUID,
) (AdjustUnitCommand, error) {
	cmd := AdjustUnitCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setAdjustment(adjustment),
		cmd.setUserID(userID),
	); err != nil {
		return AdjustUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustUnitCommand) Validate() error {
	return c.guard.Validate(ErrAdjustUnitCommandIsNotConstructed)
}

// UnitID returns the unit to adjust.
func (c AdjustUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Adjustment returns the field updates to apply.
func (c AdjustUnitCommand) Adjustment() unit.Adjustment {
	return c.adjustment
}

// Reason returns the free-text reason for the adjustment.
func (c AdjustUnitCommand) Reason() string {
	return c.reason
}

// UserID returns the acting user.
func (c AdjustUnitCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *AdjustUnitCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.unitID = id
	return nil
}

func (c *AdjustUnitCommand) setAdjustment(adj unit.Adjustment) error {
	if adj.Brand == nil && adj.Model == nil && adj.Color == nil && adj.Notes == nil && adj.AssignedBranchID == nil {
		return ErrAdjustmentIsEmpty
	}

	c.adjustment = adj
	return nil
}

func (c *AdjustUnitCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
