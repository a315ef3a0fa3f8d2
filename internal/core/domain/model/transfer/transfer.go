// Package transfer provides the domain model for two-phase unit relocations.
// A transfer is initiated at the source location, travels as InTransit, and is
// completed by a reception at the destination; after that it is immutable.
package transfer

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
)

// ErrTransferIsNotConstructed is returned when a Transfer instance was not
// created through the NewTransfer or RestoreTransfer factory methods.
var ErrTransferIsNotConstructed = errors.New("Transfer must be created via NewTransfer or RestoreTransfer")

// Transfer is a relocation workflow instance for one unit. The workflow
// guarantees at most one active (pending or in-transit) transfer per unit;
// the aggregate itself guards its own state transitions.
type Transfer struct {
	id             kernel.UUID
	unitID         kernel.UUID
	fromLocationID kernel.UUID
	toLocationID   kernel.UUID
	eta            *time.Time
	createdBy      kernel.UUID
	createdAt      time.Time
	receivedBy     *kernel.UUID
	receivedAt     *time.Time
	status         Status
	reason         string

	isConstructed bool
}

// NewTransfer creates a transfer directly in InTransit status. Source and
// destination must differ.
func NewTransfer(
	id kernel.UUID,
	unitID kernel.UUID,
	fromLocationID, toLocationID kernel.UUID,
	eta *time.Time,
	reason string,
	createdBy kernel.UUID,
	now time.Time,
) (*Transfer, error) {
	t := &Transfer{
		status:        StatusInTransit,
		eta:           eta,
		reason:        reason,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setUnitID(unitID),
		t.setRoute(fromLocationID, toLocationID),
		t.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransfer reconstructs a transfer from persistence.
func RestoreTransfer(
	id kernel.UUID,
	unitID kernel.UUID,
	fromLocationID, toLocationID kernel.UUID,
	eta *time.Time,
	reason string,
	createdBy kernel.UUID,
	createdAt time.Time,
	receivedBy *kernel.UUID,
	receivedAt *time.Time,
	status Status,
) (*Transfer, error) {
	t, err := NewTransfer(id, unitID, fromLocationID, toLocationID, eta, reason, createdBy, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if receivedBy != nil {
		if err = receivedBy.Validate(); err != nil {
			return nil, err
		}
	}

	t.status = status
	t.receivedBy = receivedBy
	t.receivedAt = receivedAt
	return t, nil
}

// Validate ensures the Transfer was constructed through a factory function.
func (t *Transfer) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransferIsNotConstructed
	}
	return nil
}

// IsEqual compares two transfers by identity.
func (t *Transfer) IsEqual(other *Transfer) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transfer's unique identifier.
func (t *Transfer) ID() kernel.UUID {
	return t.id
}

// UnitID returns the unit being relocated.
func (t *Transfer) UnitID() kernel.UUID {
	return t.unitID
}

// FromLocationID returns the source location.
func (t *Transfer) FromLocationID() kernel.UUID {
	return t.fromLocationID
}

// ToLocationID returns the destination location.
func (t *Transfer) ToLocationID() kernel.UUID {
	return t.toLocationID
}

// ETA returns the estimated arrival time, or nil if none was given.
func (t *Transfer) ETA() *time.Time {
	return t.eta
}

// CreatedBy returns the actor who initiated the transfer.
func (t *Transfer) CreatedBy() kernel.UUID {
	return t.createdBy
}

// CreatedAt returns when the transfer was initiated.
func (t *Transfer) CreatedAt() time.Time {
	return t.createdAt
}

// ReceivedBy returns the actor who received the transfer, or nil while in transit.
func (t *Transfer) ReceivedBy() *kernel.UUID {
	return t.receivedBy
}

// ReceivedAt returns when the transfer was received, or nil while in transit.
func (t *Transfer) ReceivedAt() *time.Time {
	return t.receivedAt
}

// Status returns the transfer's current status.
func (t *Transfer) Status() Status {
	return t.status
}

// Reason returns the free-text reason for the relocation.
func (t *Transfer) Reason() string {
	return t.reason
}

// IsOverdue reports whether the transfer is still in transit past its ETA.
func (t *Transfer) IsOverdue(now time.Time) bool {
	return t.status == StatusInTransit && t.eta != nil && now.After(*t.eta)
}

// Receive completes the transfer. Only legal while in transit; afterwards the
// transfer is terminal and immutable.
func (t *Transfer) Receive(receivedBy kernel.UUID, now time.Time) error {
	if err := receivedBy.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.Receive()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.receivedBy = &receivedBy
	t.receivedAt = &now
	return nil
}

func (t *Transfer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transfer) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.unitID = id
	return nil
}

func (t *Transfer) setRoute(from, to kernel.UUID) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return errs.NewValueIsInvalidErrorWithCause(
			"to_location",
			errors.New("source and destination locations are identical"),
		)
	}
	t.fromLocationID = from
	t.toLocationID = to
	return nil
}

func (t *Transfer) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.createdBy = id
	return nil
}
