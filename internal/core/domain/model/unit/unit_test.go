package unit_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, locType location.Type) *location.Location {
	t.Helper()
	loc, err := location.NewLocation(kernel.NewUUID(), "loc-"+locType.String(), locType, time.Now().UTC())
	require.NoError(t, err)
	return loc
}

func mustUnit(t *testing.T, warehouse *location.Location) *unit.Unit {
	t.Helper()
	u, err := unit.NewUnit(
		kernel.NewUUID(),
		"Thunderrol", "TR-2025", "rojo", "INV-001",
		kernel.NewUUID(),
		warehouse.ID(),
		"",
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return u
}

func TestNewUnit(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)

	t.Run("starts_unidentified_in_warehouse", func(t *testing.T) {
		u := mustUnit(t, warehouse)

		assert.Equal(t, unit.StatusUnidentifiedInWarehouse, u.Status())
		assert.True(t, u.LocationID().IsEqual(warehouse.ID()))
		assert.Nil(t, u.EngineNumber())
		assert.Nil(t, u.ChassisNumber())
		assert.Nil(t, u.AssignedBranchID())
	})

	t.Run("rejects_missing_descriptive_fields", func(t *testing.T) {
		_, err := unit.NewUnit(
			kernel.NewUUID(), "", "", "", "",
			kernel.NewUUID(), warehouse.ID(), "", kernel.NewUUID(), time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var u unit.Unit
		assert.Equal(t, unit.ErrUnitIsNotConstructed, u.Validate())
	})
}

func TestRestoreUnit(t *testing.T) {
	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := unit.RestoreUnit(
			kernel.NewUUID(), "Thunderrol", "TR-2025", "negro", nil, nil,
			"INV-002", kernel.NewUUID(), kernel.NewUUID(), nil,
			unit.Status(42), "", time.Now().UTC(), time.Now().UTC(), kernel.NewUUID(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restores_identification_numbers", func(t *testing.T) {
		engine := int64(12345678901234)
		chassis := "HXY202507498"

		u, err := unit.RestoreUnit(
			kernel.NewUUID(), "Thunderrol", "TR-2025", "azul", &engine, &chassis,
			"INV-002", kernel.NewUUID(), kernel.NewUUID(), nil,
			unit.StatusIdentifiedInWorkshop, "", time.Now().UTC(), time.Now().UTC(), kernel.NewUUID(),
		)

		require.NoError(t, err)
		require.NotNil(t, u.EngineNumber())
		assert.Equal(t, engine, *u.EngineNumber())
		require.NotNil(t, u.ChassisNumber())
		assert.Equal(t, chassis, *u.ChassisNumber())
	})
}

func TestUnit_Identify(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)
	workshop := mustLocation(t, location.TypeWorkshop)
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("binds_numbers_and_moves_to_workshop", func(t *testing.T) {
		u := mustUnit(t, warehouse)

		err := u.Identify(12345678901234, "HXY202507498", workshop, actor, now)

		require.NoError(t, err)
		assert.Equal(t, unit.StatusIdentifiedInWorkshop, u.Status())
		assert.True(t, u.LocationID().IsEqual(workshop.ID()))
		require.NotNil(t, u.EngineNumber())
		assert.Equal(t, int64(12345678901234), *u.EngineNumber())
		require.NotNil(t, u.ChassisNumber())
		assert.Equal(t, "HXY202507498", *u.ChassisNumber())
		assert.True(t, u.LastUpdatedBy().IsEqual(actor))
	})

	t.Run("rejected_when_already_identified", func(t *testing.T) {
		u := mustUnit(t, warehouse)
		require.NoError(t, u.Identify(111, "CH-1", workshop, actor, now))

		err := u.Identify(222, "CH-2", workshop, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("rejected_at_non_workshop_destination", func(t *testing.T) {
		u := mustUnit(t, warehouse)
		branch := mustLocation(t, location.TypeBranch)

		err := u.Identify(333, "CH-3", branch, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_numbers", func(t *testing.T) {
		u := mustUnit(t, warehouse)

		require.Error(t, u.Identify(0, "CH-4", workshop, actor, now))
		require.Error(t, u.Identify(444, "", workshop, actor, now))
	})
}

func TestUnit_InitiateTransfer(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)
	workshop := mustLocation(t, location.TypeWorkshop)
	branch := mustLocation(t, location.TypeBranch)
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	identifiedUnit := func(t *testing.T) *unit.Unit {
		u := mustUnit(t, warehouse)
		require.NoError(t, u.Identify(555, "CH-5", workshop, actor, now))
		return u
	}

	t.Run("workshop_to_branch", func(t *testing.T) {
		u := identifiedUnit(t)

		err := u.InitiateTransfer(workshop, branch, actor, now)

		require.NoError(t, err)
		assert.Equal(t, unit.StatusInTransitWorkshopToBranch, u.Status())
		// Location changes only on reception.
		assert.True(t, u.LocationID().IsEqual(workshop.ID()))
	})

	t.Run("rejected_when_unit_not_at_source", func(t *testing.T) {
		u := identifiedUnit(t)
		otherWorkshop := mustLocation(t, location.TypeWorkshop)

		err := u.InitiateTransfer(otherWorkshop, branch, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejected_for_identical_source_and_destination", func(t *testing.T) {
		u := identifiedUnit(t)

		err := u.InitiateTransfer(workshop, workshop, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejected_for_unmapped_route", func(t *testing.T) {
		u := mustUnit(t, warehouse)

		err := u.InitiateTransfer(warehouse, branch, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, unit.StatusUnidentifiedInWarehouse, u.Status())
	})

	t.Run("rejected_for_reserved_unit", func(t *testing.T) {
		otherBranch := mustLocation(t, location.TypeBranch)
		u := identifiedUnit(t)
		require.NoError(t, u.InitiateTransfer(workshop, branch, actor, now))
		require.NoError(t, u.ReceiveAt(branch, actor, now))
		require.NoError(t, u.Reserve(actor, now))

		err := u.InitiateTransfer(branch, otherBranch, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, unit.StatusReserved, u.Status())
	})
}

func TestUnit_ReceiveAt(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)
	workshop := mustLocation(t, location.TypeWorkshop)
	branch := mustLocation(t, location.TypeBranch)
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	inTransitUnit := func(t *testing.T) *unit.Unit {
		u := mustUnit(t, warehouse)
		require.NoError(t, u.Identify(666, "CH-6", workshop, actor, now))
		require.NoError(t, u.InitiateTransfer(workshop, branch, actor, now))
		return u
	}

	t.Run("arrival_at_branch_makes_unit_available", func(t *testing.T) {
		u := inTransitUnit(t)

		err := u.ReceiveAt(branch, actor, now)

		require.NoError(t, err)
		assert.Equal(t, unit.StatusAvailableAtBranch, u.Status())
		assert.True(t, u.LocationID().IsEqual(branch.ID()))
	})

	t.Run("rejected_when_not_in_transit", func(t *testing.T) {
		u := mustUnit(t, warehouse)

		err := u.ReceiveAt(branch, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestUnit_MarkSold(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)
	workshop := mustLocation(t, location.TypeWorkshop)
	branch := mustLocation(t, location.TypeBranch)
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	availableUnit := func(t *testing.T) *unit.Unit {
		u := mustUnit(t, warehouse)
		require.NoError(t, u.Identify(777, "CH-7", workshop, actor, now))
		require.NoError(t, u.InitiateTransfer(workshop, branch, actor, now))
		require.NoError(t, u.ReceiveAt(branch, actor, now))
		return u
	}

	t.Run("sells_available_unit", func(t *testing.T) {
		u := availableUnit(t)

		err := u.MarkSold(actor, now)

		require.NoError(t, err)
		assert.Equal(t, unit.StatusSold, u.Status())
	})

	t.Run("sells_reserved_unit", func(t *testing.T) {
		u := availableUnit(t)
		require.NoError(t, u.Reserve(actor, now))

		err := u.MarkSold(actor, now)

		require.NoError(t, err)
		assert.Equal(t, unit.StatusSold, u.Status())
	})

	t.Run("sold_is_terminal", func(t *testing.T) {
		u := availableUnit(t)
		require.NoError(t, u.MarkSold(actor, now))

		err := u.MarkSold(actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestUnit_Adjust(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("applies_only_provided_fields", func(t *testing.T) {
		u := mustUnit(t, warehouse)
		color := "negro"
		branchID := kernel.NewUUID()

		err := u.Adjust(unit.Adjustment{Color: &color, AssignedBranchID: &branchID}, actor, now)

		require.NoError(t, err)
		assert.Equal(t, "negro", u.Color())
		assert.Equal(t, "Thunderrol", u.Brand())
		require.NotNil(t, u.AssignedBranchID())
		assert.True(t, u.AssignedBranchID().IsEqual(branchID))
	})

	t.Run("rejects_blanking_required_fields", func(t *testing.T) {
		u := mustUnit(t, warehouse)
		empty := ""

		err := u.Adjust(unit.Adjustment{Brand: &empty}, actor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUnit_AddNote(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	u := mustUnit(t, warehouse)

	require.NoError(t, u.AddNote("llanta rayada", actor, now))
	assert.Equal(t, "llanta rayada", u.Notes())

	require.NoError(t, u.AddNote("espejo reemplazado", actor, now))
	assert.Equal(t, "llanta rayada\nespejo reemplazado", u.Notes())

	require.Error(t, u.AddNote("", actor, now))
}

func TestUnit_Snapshot(t *testing.T) {
	warehouse := mustLocation(t, location.TypeWarehouse)
	workshop := mustLocation(t, location.TypeWorkshop)
	actor := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("projects_unidentified_unit", func(t *testing.T) {
		u := mustUnit(t, warehouse)

		snap := u.Snapshot()

		assert.Equal(t, "Thunderrol", snap.Brand)
		assert.Equal(t, "UNIDENTIFIED_IN_WAREHOUSE", snap.Status)
		assert.Equal(t, warehouse.ID().String(), snap.LocationID)
		assert.Nil(t, snap.EngineNumber)
		assert.Nil(t, snap.ChassisNumber)
		assert.Nil(t, snap.AssignedBranchID)
	})

	t.Run("is_deterministic", func(t *testing.T) {
		u := mustUnit(t, warehouse)
		require.NoError(t, u.Identify(888, "CH-8", workshop, actor, now))

		assert.Equal(t, u.Snapshot(), u.Snapshot())
	})

	t.Run("reflects_identification", func(t *testing.T) {
		u := mustUnit(t, warehouse)
		before := u.Snapshot()
		require.NoError(t, u.Identify(999, "CH-9", workshop, actor, now))
		after := u.Snapshot()

		assert.NotEqual(t, before, after)
		assert.Equal(t, "IDENTIFIED_IN_WORKSHOP", after.Status)
		require.NotNil(t, after.EngineNumber)
		assert.Equal(t, int64(999), *after.EngineNumber)
	})
}
