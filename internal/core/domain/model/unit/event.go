package unit

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent or RestoreEvent factory methods.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// EventType classifies audit events on a unit.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	EventTypeUnknown EventType = iota

	// EventTypeCreated records manual unit creation.
	EventTypeCreated

	// EventTypeImported records unit creation through a shipment import.
	EventTypeImported

	// EventTypeIdentified records the assignment of engine/chassis numbers.
	EventTypeIdentified

	// EventTypeTransferInitiated records the start of a relocation.
	EventTypeTransferInitiated

	// EventTypeTransferReceived records the completion of a relocation.
	EventTypeTransferReceived

	// EventTypeStatusChanged records a direct status change outside the named
	// workflows, such as a reservation.
	EventTypeStatusChanged

	// EventTypeSold records the terminal sale of the unit.
	EventTypeSold

	// EventTypeAdjusted records an edit to the unit's descriptive fields.
	EventTypeAdjusted

	// EventTypeNoteAdded records an appended free-text note.
	EventTypeNoteAdded
)

func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // EventTypeUnknown is intentionally excluded as it's invalid
	return map[EventType]string{
		EventTypeCreated:           "CREATED",
		EventTypeImported:          "IMPORTED",
		EventTypeIdentified:        "IDENTIFIED",
		EventTypeTransferInitiated: "TRANSFER_INITIATED",
		EventTypeTransferReceived:  "TRANSFER_RECEIVED",
		EventTypeStatusChanged:     "STATUS_CHANGED",
		EventTypeSold:              "SOLD",
		EventTypeAdjusted:          "ADJUSTED",
		EventTypeNoteAdded:         "NOTE_ADDED",
	}
}

// EventTypeFromString parses a persisted event type string.
func EventTypeFromString(s string) (EventType, error) {
	for et, str := range getValidEventTypeStrings() {
		if str == s {
			return et, nil
		}
	}
	return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"event type",
		fmt.Errorf("%q is not a valid event type", s),
	)
}

// Validate checks if the EventType is one of the defined event types.
func (et EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[et]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"event type",
			fmt.Errorf("%d is not a valid event type", et),
		)
	}
	return nil
}

// String returns the event type code, or "UNKNOWN" for invalid values.
func (et EventType) String() string {
	if str, ok := getValidEventTypeStrings()[et]; ok {
		return str
	}
	return "UNKNOWN"
}

// Event is an immutable audit record of one unit mutation. It carries the
// before/after snapshots of the unit, the acting user and a free-text reason.
// Once written, an event is never updated or deleted; the event repository
// exposes no operation that could do either.
type Event struct {
	id        kernel.UUID
	unitID    kernel.UUID
	eventType EventType
	before    *Snapshot
	after     Snapshot
	userID    kernel.UUID
	reason    string
	timestamp time.Time

	isConstructed bool
}

// NewEvent creates an audit event with validation. The before snapshot is nil
// for creation events; every other event carries both snapshots.
func NewEvent(
	id kernel.UUID,
	unitID kernel.UUID,
	eventType EventType,
	before *Snapshot,
	after Snapshot,
	userID kernel.UUID,
	reason string,
	timestamp time.Time,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		unitID.Validate(),
		eventType.Validate(),
		userID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Event{
		id:            id,
		unitID:        unitID,
		eventType:     eventType,
		before:        before,
		after:         after,
		userID:        userID,
		reason:        reason,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(
	id kernel.UUID,
	unitID kernel.UUID,
	eventType EventType,
	before *Snapshot,
	after Snapshot,
	userID kernel.UUID,
	reason string,
	timestamp time.Time,
) (*Event, error) {
	return NewEvent(id, unitID, eventType, before, after, userID, reason, timestamp)
}

// Validate ensures the Event was constructed through a factory function.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// UnitID returns the identifier of the unit this event belongs to.
func (e *Event) UnitID() kernel.UUID {
	return e.unitID
}

// Type returns the event classification.
func (e *Event) Type() EventType {
	return e.eventType
}

// Before returns the unit snapshot taken before the mutation, or nil for
// creation events.
func (e *Event) Before() *Snapshot {
	return e.before
}

// After returns the unit snapshot taken after the mutation.
func (e *Event) After() Snapshot {
	return e.after
}

// UserID returns the acting user's identifier.
func (e *Event) UserID() kernel.UUID {
	return e.userID
}

// Reason returns the free-text reason recorded with the event.
func (e *Event) Reason() string {
	return e.reason
}

// Timestamp returns when the event was recorded.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}
