package commands_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/unit"

	"github.com/stretchr/testify/require"
)

func newTestLocation(t *testing.T, locType location.Type) *location.Location {
	t.Helper()

	loc, err := location.NewLocation(kernel.NewUUID(), "test location", locType, time.Now().UTC())
	require.NoError(t, err)
	return loc
}

func newTestUnit(t *testing.T, status unit.Status, locationID kernel.UUID) *unit.Unit {
	t.Helper()

	now := time.Now().UTC()
	var engine *int64
	var chassis *string
	if status != unit.StatusUnidentifiedInWarehouse {
		e := int64(700123)
		c := "CH-700123"
		engine = &e
		chassis = &c
	}

	u, err := unit.RestoreUnit(
		kernel.NewUUID(),
		"Honda", "CB190R", "red",
		engine, chassis,
		"INV-001",
		kernel.NewUUID(),
		locationID,
		nil,
		status,
		"",
		now, now,
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return u
}
