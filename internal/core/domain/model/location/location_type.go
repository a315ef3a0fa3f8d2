package location

import (
	"fmt"

	"inventory/internal/pkg/errs"
)

// Type classifies a physical location. The type of a transfer's destination
// determines the status a unit takes on arrival, so every location must carry
// exactly one of the three known types.
type Type int

const (
	// TypeUnknown represents an invalid or undefined location type.
	TypeUnknown Type = iota

	// TypeWarehouse is a storage warehouse ("BODEGA"). Units arrive here from
	// import and stay unidentified until matched.
	TypeWarehouse

	// TypeWorkshop is a preparation workshop ("TALLER"). Units move here once
	// their engine and chassis numbers are assigned.
	TypeWorkshop

	// TypeBranch is a sales branch ("SUCURSAL"). Units at a branch are sellable.
	TypeBranch
)

// Location type codes as persisted and exchanged with callers. The Spanish
// codes are the wire format inherited from the business domain.
const (
	warehouseCode = "BODEGA"
	workshopCode  = "TALLER"
	branchCode    = "SUCURSAL"
)

func getValidTypeCodes() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeWarehouse: warehouseCode,
		TypeWorkshop:  workshopCode,
		TypeBranch:    branchCode,
	}
}

// TypeFromCode parses a persisted location type code ("BODEGA", "TALLER",
// "SUCURSAL") into a Type. Returns an error for any other value.
func TypeFromCode(code string) (Type, error) {
	for t, c := range getValidTypeCodes() {
		if c == code {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"location type",
		fmt.Errorf("%q is not a valid location type code", code),
	)
}

// Validate checks that the Type is one of the three known location types.
func (t Type) Validate() error {
	if _, ok := getValidTypeCodes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"location type",
			fmt.Errorf("%d is not a valid location type", t),
		)
	}
	return nil
}

// String returns the location type code, or "UNKNOWN" for invalid values.
func (t Type) String() string {
	if code, ok := getValidTypeCodes()[t]; ok {
		return code
	}
	return "UNKNOWN"
}
