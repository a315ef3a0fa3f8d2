package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrAddUnitNoteCommandIsNotConstructed = errors.New(
	"AddUnitNoteCommand must be created via NewAddUnitNoteCommand constructor",
)

// AddUnitNoteCommand represents a request to append a free-text note to a unit.
type AddUnitNoteCommand struct { //nolint:recvcheck //using for validation
	unitID kernel.UUID
	note   string
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddUnitNoteCommand creates a note command. The note must be non-empty.
func NewAddUnitNoteCommand(unitID kernel.UUID, note string, userID kernel.UUID) (AddUnitNoteCommand, error) {
	cmd := AddUnitNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setNote(note),
		cmd.setUserID(userID),
	); err != nil {
		return AddUnitNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddUnitNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddUnitNoteCommandIsNotConstructed)
}

// UnitID returns the unit to annotate.
func (c AddUnitNoteCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Note returns the note text.
func (c AddUnitNoteCommand) Note() string {
	return c.note
}

// UserID returns the acting user.
func (c AddUnitNoteCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *AddUnitNoteCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.unitID = id
	return nil
}

func (c *AddUnitNoteCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}

	c.note = note
	return nil
}

func (c *AddUnitNoteCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
