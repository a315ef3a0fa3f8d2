package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrReceiveTransferCommandIsNotConstructed = errors.New(
	"ReceiveTransferCommand must be created via NewReceiveTransferCommand constructor",
)

// ReceiveTransferCommand represents a request to complete an in-transit
// transfer: the unit arrives at the destination and takes the status that
// destination's type implies.
type ReceiveTransferCommand struct { //nolint:recvcheck //using for validation
	transferID kernel.UUID
	receivedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveTransferCommand creates a transfer reception command.
func NewReceiveTransferCommand(transferID, receivedBy kernel.UUID) (ReceiveTransferCommand, error) {
	cmd := ReceiveTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransferID(transferID),
		cmd.setReceivedBy(receivedBy),
	); err != nil {
		return ReceiveTransferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveTransferCommand) Validate() error {
	return c.guard.Validate(ErrReceiveTransferCommandIsNotConstructed)
}

// TransferID returns the transfer to complete.
func (c ReceiveTransferCommand) TransferID() kernel.UUID {
	return c.transferID
}

// ReceivedBy returns the acting user.
func (c ReceiveTransferCommand) ReceivedBy() kernel.UUID {
	return c.receivedBy
}

func (c *ReceiveTransferCommand) setTransferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.transferID = id
	return nil
}

func (c *ReceiveTransferCommand) setReceivedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.receivedBy = id
	return nil
}
