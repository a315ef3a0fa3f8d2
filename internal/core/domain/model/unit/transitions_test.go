package unit_test

import (
	"testing"

	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiationStatus(t *testing.T) {
	t.Run("workshop_to_branch", func(t *testing.T) {
		status, err := unit.InitiationStatus(
			unit.StatusIdentifiedInWorkshop, location.TypeWorkshop, location.TypeBranch)

		require.NoError(t, err)
		assert.Equal(t, unit.StatusInTransitWorkshopToBranch, status)
	})

	t.Run("branch_to_branch", func(t *testing.T) {
		status, err := unit.InitiationStatus(
			unit.StatusAvailableAtBranch, location.TypeBranch, location.TypeBranch)

		require.NoError(t, err)
		assert.Equal(t, unit.StatusInTransitBranchToBranch, status)
	})

	t.Run("wrong_current_status_is_a_state_conflict", func(t *testing.T) {
		blocked := []unit.Status{
			unit.StatusReserved,
			unit.StatusSold,
			unit.StatusInTransitBranchToBranch,
			unit.StatusUnidentifiedInWarehouse,
		}

		for _, current := range blocked {
			_, err := unit.InitiationStatus(current, location.TypeBranch, location.TypeBranch)
			require.Error(t, err, current.String())
			assert.ErrorIs(t, err, errs.ErrStateConflict)
			assert.Contains(t, err.Error(), current.String())
		}
	})

	t.Run("unmapped_routes_are_state_conflicts", func(t *testing.T) {
		unmapped := []struct{ from, to location.Type }{
			{location.TypeWarehouse, location.TypeBranch},
			{location.TypeWarehouse, location.TypeWorkshop},
			{location.TypeWarehouse, location.TypeWarehouse},
			{location.TypeWorkshop, location.TypeWorkshop},
			{location.TypeWorkshop, location.TypeWarehouse},
			{location.TypeBranch, location.TypeWorkshop},
			{location.TypeBranch, location.TypeWarehouse},
		}

		for _, route := range unmapped {
			_, err := unit.InitiationStatus(unit.StatusIdentifiedInWorkshop, route.from, route.to)
			require.Error(t, err, "%s->%s", route.from, route.to)
			assert.ErrorIs(t, err, errs.ErrStateConflict)
			assert.Contains(t, err.Error(), route.from.String())
			assert.Contains(t, err.Error(), route.to.String())
		}
	})

	t.Run("invalid_location_types_are_rejected", func(t *testing.T) {
		_, err := unit.InitiationStatus(
			unit.StatusIdentifiedInWorkshop, location.TypeUnknown, location.TypeBranch)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = unit.InitiationStatus(
			unit.StatusIdentifiedInWorkshop, location.TypeWorkshop, location.TypeUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestArrivalStatus(t *testing.T) {
	t.Run("is_total_over_location_types", func(t *testing.T) {
		cases := map[location.Type]unit.Status{
			location.TypeBranch:    unit.StatusAvailableAtBranch,
			location.TypeWorkshop:  unit.StatusIdentifiedInWorkshop,
			location.TypeWarehouse: unit.StatusUnidentifiedInWarehouse,
		}

		for destType, expected := range cases {
			status, err := unit.ArrivalStatus(destType)
			require.NoError(t, err, destType.String())
			assert.Equal(t, expected, status)
		}
	})

	t.Run("invalid_type_is_rejected", func(t *testing.T) {
		_, err := unit.ArrivalStatus(location.TypeUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
