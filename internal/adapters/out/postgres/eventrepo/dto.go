// Package eventrepo persists the append-only audit log. Snapshots are stored
// as JSONB documents so the log survives schema changes on the units table.
package eventrepo

import (
	"encoding/json"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting audit events.
// The before snapshot is NULL for creation events.
type EventDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID         uuid.UUID `gorm:"type:uuid;index"`
	EventType      string
	BeforeSnapshot []byte    `gorm:"type:jsonb"`
	AfterSnapshot  []byte    `gorm:"type:jsonb"`
	UserID         uuid.UUID `gorm:"type:uuid"`
	Reason         string
	Timestamp      time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit events.
func (EventDTO) TableName() string {
	return "unit_events"
}

// fromDomain converts an audit event to its database representation.
func fromDomain(event *unit.Event) (EventDTO, error) {
	var beforeRaw []byte
	if before := event.Before(); before != nil {
		raw, err := json.Marshal(before)
		if err != nil {
			return EventDTO{}, err
		}
		beforeRaw = raw
	}

	afterRaw, err := json.Marshal(event.After())
	if err != nil {
		return EventDTO{}, err
	}

	return EventDTO{
		ID:             event.ID().Bytes(),
		UnitID:         event.UnitID().Bytes(),
		EventType:      event.Type().String(),
		BeforeSnapshot: beforeRaw,
		AfterSnapshot:  afterRaw,
		UserID:         event.UserID().Bytes(),
		Reason:         event.Reason(),
		Timestamp:      event.Timestamp(),
	}, nil
}

// toDomain converts a database DTO to an audit event using RestoreEvent.
func toDomain(dto EventDTO) (*unit.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	eventType, err := unit.EventTypeFromString(dto.EventType)
	if err != nil {
		return nil, err
	}

	var before *unit.Snapshot
	if len(dto.BeforeSnapshot) > 0 {
		var snapshot unit.Snapshot
		if err = json.Unmarshal(dto.BeforeSnapshot, &snapshot); err != nil {
			return nil, err
		}
		before = &snapshot
	}

	var after unit.Snapshot
	if err = json.Unmarshal(dto.AfterSnapshot, &after); err != nil {
		return nil, err
	}

	return unit.RestoreEvent(id, unitID, eventType, before, after, userID, dto.Reason, dto.Timestamp)
}
