package unit

import (
	"fmt"

	"inventory/internal/pkg/errs"
)

// Status represents the lifecycle state of an inventory unit. It implements a
// state machine with defined transitions so units always follow the business
// workflow from import to sale.
//
// State transitions:
//
//	UnidentifiedInWarehouse ──identify──> IdentifiedInWorkshop
//	IdentifiedInWorkshop ──transfer──> InTransitWorkshopToBranch ──receive──> AvailableAtBranch
//	AvailableAtBranch ──transfer──> InTransitBranchToBranch ──receive──> AvailableAtBranch
//	AvailableAtBranch <──release── Reserved <──reserve── AvailableAtBranch
//	AvailableAtBranch | Reserved ──sell──> Sold (terminal)
//
// Receiving at a workshop or warehouse destination puts the unit back into
// IdentifiedInWorkshop or UnidentifiedInWarehouse respectively.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusUnidentifiedInWarehouse is the initial status after import or manual
	// creation: the unit sits in a warehouse without engine/chassis numbers.
	StatusUnidentifiedInWarehouse

	// StatusIdentifiedInWorkshop marks a unit whose engine and chassis numbers
	// have been assigned; it is being prepared at a workshop.
	StatusIdentifiedInWorkshop

	// StatusInTransitWorkshopToBranch marks a unit traveling from a workshop to
	// a sales branch.
	StatusInTransitWorkshopToBranch

	// StatusInTransitBranchToBranch marks a unit traveling between two branches.
	StatusInTransitBranchToBranch

	// StatusAvailableAtBranch marks a unit at a branch and available for sale.
	StatusAvailableAtBranch

	// StatusReserved marks a unit held for a customer; still sellable.
	StatusReserved

	// StatusSold is the terminal state. Units are never hard-deleted, they end
	// up here instead.
	StatusSold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:                   "UNKNOWN",
		StatusUnidentifiedInWarehouse:   "UNIDENTIFIED_IN_WAREHOUSE",
		StatusIdentifiedInWorkshop:      "IDENTIFIED_IN_WORKSHOP",
		StatusInTransitWorkshopToBranch: "IN_TRANSIT_WORKSHOP_TO_BRANCH",
		StatusInTransitBranchToBranch:   "IN_TRANSIT_BRANCH_TO_BRANCH",
		StatusAvailableAtBranch:         "AVAILABLE_AT_BRANCH",
		StatusReserved:                  "RESERVED",
		StatusSold:                      "SOLD",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusUnidentifiedInWarehouse:   "UNIDENTIFIED_IN_WAREHOUSE",
		StatusIdentifiedInWorkshop:      "IDENTIFIED_IN_WORKSHOP",
		StatusInTransitWorkshopToBranch: "IN_TRANSIT_WORKSHOP_TO_BRANCH",
		StatusInTransitBranchToBranch:   "IN_TRANSIT_BRANCH_TO_BRANCH",
		StatusAvailableAtBranch:         "AVAILABLE_AT_BRANCH",
		StatusReserved:                  "RESERVED",
		StatusSold:                      "SOLD",
	}
}

// StatusFromString parses a persisted status string into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"unit status",
		fmt.Errorf("%q is not a valid unit status", s),
	)
}

// Validate checks if the Status value is one of the seven defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit status",
			fmt.Errorf("%d is not a valid unit status", s),
		)
	}
	return nil
}

// String returns the status code used in persistence and audit snapshots.
// Returns "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsInTransit reports whether the status is one of the two in-transit states.
func (s Status) IsInTransit() bool {
	return s == StatusInTransitWorkshopToBranch || s == StatusInTransitBranchToBranch
}

// IsSellable reports whether a sale may start from this status.
func (s Status) IsSellable() bool {
	return s == StatusAvailableAtBranch || s == StatusReserved
}

// Identify transitions the status to IdentifiedInWorkshop.
//
// Valid transitions:
//   - UnidentifiedInWarehouse -> IdentifiedInWorkshop
//
// Returns a state-conflict error naming the current status for any other state.
func (s Status) Identify() (Status, error) {
	if s != StatusUnidentifiedInWarehouse {
		return 0, errs.NewStateConflictError("unit", s.String(), "identify")
	}
	return StatusIdentifiedInWorkshop, nil
}

// Sell transitions the status to Sold.
//
// Valid transitions:
//   - AvailableAtBranch -> Sold
//   - Reserved -> Sold
//
// Returns a state-conflict error naming the current status for any other state.
func (s Status) Sell() (Status, error) {
	if !s.IsSellable() {
		return 0, errs.NewStateConflictError("unit", s.String(), "sell")
	}
	return StatusSold, nil
}

// Reserve transitions the status to Reserved.
//
// Valid transitions:
//   - AvailableAtBranch -> Reserved
func (s Status) Reserve() (Status, error) {
	if s != StatusAvailableAtBranch {
		return 0, errs.NewStateConflictError("unit", s.String(), "reserve")
	}
	return StatusReserved, nil
}

// Release transitions the status back to AvailableAtBranch.
//
// Valid transitions:
//   - Reserved -> AvailableAtBranch
func (s Status) Release() (Status, error) {
	if s != StatusReserved {
		return 0, errs.NewStateConflictError("unit", s.String(), "release")
	}
	return StatusAvailableAtBranch, nil
}
