package unit

import (
	"inventory/internal/core/domain/model/location"
	"inventory/internal/pkg/errs"
)

// transferRoute keys the initiation transition table by the (source, destination)
// location type pair of a transfer.
type transferRoute struct {
	from location.Type
	to   location.Type
}

// initiationRule pairs the unit status required to start a transfer on a route
// with the in-transit status the unit takes once it starts.
type initiationRule struct {
	required Status
	next     Status
}

// initiationTable maps transfer routes to their initiation rule. Routes absent
// from the table are not part of the workflow: warehouse-to-branch and
// warehouse-to-workshop movements are deliberately unmapped until the product
// defines them, and initiating such a transfer fails with a state conflict
// instead of silently keeping the current status.
var initiationTable = map[transferRoute]initiationRule{
	{from: location.TypeWorkshop, to: location.TypeBranch}: {
		required: StatusIdentifiedInWorkshop,
		next:     StatusInTransitWorkshopToBranch,
	},
	{from: location.TypeBranch, to: location.TypeBranch}: {
		required: StatusAvailableAtBranch,
		next:     StatusInTransitBranchToBranch,
	},
}

// arrivalTable maps a destination location type to the status a unit takes on
// reception. It is total over the three location types.
var arrivalTable = map[location.Type]Status{
	location.TypeBranch:    StatusAvailableAtBranch,
	location.TypeWorkshop:  StatusIdentifiedInWorkshop,
	location.TypeWarehouse: StatusUnidentifiedInWarehouse,
}

// InitiationStatus returns the in-transit status for a transfer of a unit in
// the given status from a source location type to a destination location type.
// Unmapped routes return a state-conflict error identifying the route; a
// mapped route with the wrong current status returns one naming that status,
// so a reserved or sold unit at a branch cannot be put in transit.
func InitiationStatus(current Status, from, to location.Type) (Status, error) {
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	rule, ok := initiationTable[transferRoute{from: from, to: to}]
	if !ok {
		return 0, errs.NewStateConflictError(
			"transfer route",
			from.String()+"->"+to.String(),
			"initiate transfer",
		)
	}
	if current != rule.required {
		return 0, errs.NewStateConflictError("unit", current.String(), "initiate transfer")
	}
	return rule.next, nil
}

// ArrivalStatus returns the status a unit takes when a transfer is received at
// a destination of the given location type.
func ArrivalStatus(destination location.Type) (Status, error) {
	if err := destination.Validate(); err != nil {
		return 0, err
	}
	return arrivalTable[destination], nil
}
