package unit_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	now := time.Now().UTC()
	after := unit.Snapshot{Brand: "Thunderrol", Model: "TR-2025", Color: "rojo", Status: "UNIDENTIFIED_IN_WAREHOUSE"}

	t.Run("creation_event_has_no_before_snapshot", func(t *testing.T) {
		ev, err := unit.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), unit.EventTypeCreated,
			nil, after, kernel.NewUUID(), "Unit created manually", now,
		)

		require.NoError(t, err)
		require.NoError(t, ev.Validate())
		assert.Nil(t, ev.Before())
		assert.Equal(t, after, ev.After())
		assert.Equal(t, unit.EventTypeCreated, ev.Type())
		assert.Equal(t, "Unit created manually", ev.Reason())
		assert.Equal(t, now, ev.Timestamp())
	})

	t.Run("mutation_event_carries_both_snapshots", func(t *testing.T) {
		before := after
		mutated := after
		mutated.Status = "IDENTIFIED_IN_WORKSHOP"

		ev, err := unit.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), unit.EventTypeIdentified,
			&before, mutated, kernel.NewUUID(), "", now,
		)

		require.NoError(t, err)
		require.NotNil(t, ev.Before())
		assert.Equal(t, before, *ev.Before())
		assert.Equal(t, mutated, ev.After())
	})

	t.Run("rejects_invalid_event_type", func(t *testing.T) {
		_, err := unit.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), unit.EventTypeUnknown,
			nil, after, kernel.NewUUID(), "", now,
		)
		require.Error(t, err)
	})

	t.Run("rejects_zero_value_ids", func(t *testing.T) {
		var zero kernel.UUID
		_, err := unit.NewEvent(
			zero, kernel.NewUUID(), unit.EventTypeCreated,
			nil, after, kernel.NewUUID(), "", now,
		)
		require.Error(t, err)

		_, err = unit.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), unit.EventTypeCreated,
			nil, after, zero, "", now,
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var ev unit.Event
		assert.Equal(t, unit.ErrEventIsNotConstructed, ev.Validate())
	})
}

func TestEventTypeFromString(t *testing.T) {
	t.Run("round_trips_every_valid_type", func(t *testing.T) {
		for _, et := range []unit.EventType{
			unit.EventTypeCreated,
			unit.EventTypeImported,
			unit.EventTypeIdentified,
			unit.EventTypeTransferInitiated,
			unit.EventTypeTransferReceived,
			unit.EventTypeStatusChanged,
			unit.EventTypeSold,
			unit.EventTypeAdjusted,
			unit.EventTypeNoteAdded,
		} {
			parsed, err := unit.EventTypeFromString(et.String())
			require.NoError(t, err)
			assert.Equal(t, et, parsed)
		}
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := unit.EventTypeFromString("REPAINTED")
		require.Error(t, err)
		assert.Equal(t, "UNKNOWN", unit.EventType(42).String())
	})
}
