package unit

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/pkg/errs"
)

// ErrUnitIsNotConstructed is returned when a Unit instance was not created
// through the NewUnit or RestoreUnit factory methods.
var ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit or RestoreUnit")

// Unit is the aggregate root for a single trackable inventory item (motorcycle
// or scooter). It owns the unit's identity, placement and lifecycle status.
//
// Unit maintains these invariants:
//   - Status is always one of the seven defined states and changes only
//     through the transition methods below; no caller sets it directly
//   - Engine and chassis numbers are assigned exactly once, at identification
//   - Every mutating method records the acting user and refreshes updatedAt,
//     so the enclosing workflow can pair the mutation with an audit event
//
// Units are never hard-deleted; a sold unit stays in the table with the
// terminal Sold status.
type Unit struct {
	id               kernel.UUID
	brand            string
	model            string
	color            string
	engineNumber     *int64
	chassisNumber    *string
	supplierInvoice  string
	shipmentID       kernel.UUID
	locationID       kernel.UUID
	assignedBranchID *kernel.UUID
	status           Status
	notes            string
	createdAt        time.Time
	updatedAt        time.Time
	lastUpdatedBy    kernel.UUID

	isConstructed bool
}

// NewUnit creates a unit in the initial UnidentifiedInWarehouse status, placed
// at the given warehouse location. Engine and chassis numbers start unassigned.
func NewUnit(
	id kernel.UUID,
	brand, model, color, supplierInvoice string,
	shipmentID kernel.UUID,
	warehouseID kernel.UUID,
	notes string,
	createdBy kernel.UUID,
	now time.Time,
) (*Unit, error) {
	u := &Unit{
		status:        StatusUnidentifiedInWarehouse,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setBrand(brand),
		u.setModel(model),
		u.setColor(color),
		u.setSupplierInvoice(supplierInvoice),
		u.setShipmentID(shipmentID),
		u.setLocationID(warehouseID),
		u.setLastUpdatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUnit reconstructs a unit from persistence without applying creation
// defaults. The stored status must be valid.
func RestoreUnit(
	id kernel.UUID,
	brand, model, color string,
	engineNumber *int64,
	chassisNumber *string,
	supplierInvoice string,
	shipmentID kernel.UUID,
	locationID kernel.UUID,
	assignedBranchID *kernel.UUID,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
	lastUpdatedBy kernel.UUID,
) (*Unit, error) {
	u, err := NewUnit(id, brand, model, color, supplierInvoice, shipmentID, locationID, notes, lastUpdatedBy, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if assignedBranchID != nil {
		if err = assignedBranchID.Validate(); err != nil {
			return nil, err
		}
	}

	u.engineNumber = engineNumber
	u.chassisNumber = chassisNumber
	u.assignedBranchID = assignedBranchID
	u.status = status
	u.updatedAt = updatedAt
	return u, nil
}

// Validate ensures the Unit was constructed through a factory function.
func (u *Unit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUnitIsNotConstructed
	}
	return nil
}

// IsEqual compares two units by identity.
func (u *Unit) IsEqual(other *Unit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (u *Unit) ID() kernel.UUID {
	return u.id
}

// Brand returns the manufacturer brand.
func (u *Unit) Brand() string {
	return u.brand
}

// Model returns the model designation.
func (u *Unit) Model() string {
	return u.model
}

// Color returns the color description.
func (u *Unit) Color() string {
	return u.color
}

// EngineNumber returns the assigned engine number, or nil before identification.
func (u *Unit) EngineNumber() *int64 {
	return u.engineNumber
}

// ChassisNumber returns the assigned chassis number, or nil before identification.
func (u *Unit) ChassisNumber() *string {
	return u.chassisNumber
}

// SupplierInvoice returns the supplier invoice reference.
func (u *Unit) SupplierInvoice() string {
	return u.supplierInvoice
}

// ShipmentID returns the import batch that created this unit.
func (u *Unit) ShipmentID() kernel.UUID {
	return u.shipmentID
}

// LocationID returns the unit's current physical location.
func (u *Unit) LocationID() kernel.UUID {
	return u.locationID
}

// AssignedBranchID returns the branch the unit is destined for, or nil.
func (u *Unit) AssignedBranchID() *kernel.UUID {
	return u.assignedBranchID
}

// Status returns the current lifecycle status.
func (u *Unit) Status() Status {
	return u.status
}

// Notes returns the free-text notes.
func (u *Unit) Notes() string {
	return u.notes
}

// CreatedAt returns the creation timestamp.
func (u *Unit) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (u *Unit) UpdatedAt() time.Time {
	return u.updatedAt
}

// LastUpdatedBy returns the actor of the last mutation.
func (u *Unit) LastUpdatedBy() kernel.UUID {
	return u.lastUpdatedBy
}

// Snapshot projects the unit's salient fields for audit events. The projection
// is deterministic: equal unit states produce equal snapshots.
func (u *Unit) Snapshot() Snapshot {
	var assignedBranch *string
	if u.assignedBranchID != nil {
		s := u.assignedBranchID.String()
		assignedBranch = &s
	}

	return Snapshot{
		Brand:            u.brand,
		Model:            u.model,
		Color:            u.color,
		EngineNumber:     u.engineNumber,
		ChassisNumber:    u.chassisNumber,
		Status:           u.status.String(),
		LocationID:       u.locationID.String(),
		AssignedBranchID: assignedBranch,
		Notes:            u.notes,
	}
}

// Identify binds engine and chassis numbers to the unit and moves it to the
// workshop. Only legal from UnidentifiedInWarehouse. Uniqueness of the numbers
// across all units is the enclosing workflow's responsibility; this method
// only guards the unit's own state.
func (u *Unit) Identify(
	engineNumber int64,
	chassisNumber string,
	workshop *location.Location,
	actor kernel.UUID,
	now time.Time,
) error {
	if err := workshop.Validate(); err != nil {
		return err
	}
	if workshop.Type() != location.TypeWorkshop {
		return errs.NewValueIsInvalidErrorWithCause(
			"workshop",
			fmt.Errorf("location %s is a %s, not a workshop", workshop.ID(), workshop.Type()),
		)
	}
	if engineNumber <= 0 {
		return errs.NewValueIsInvalidError("engine_number")
	}
	if chassisNumber == "" {
		return errs.NewValueIsRequiredError("chassis_number")
	}

	newStatus, err := u.status.Identify()
	if err != nil {
		return err
	}

	u.engineNumber = &engineNumber
	u.chassisNumber = &chassisNumber
	u.locationID = workshop.ID()
	u.status = newStatus
	u.touch(actor, now)
	return nil
}

// InitiateTransfer puts the unit into the in-transit status for the route from
// its current location to the destination. The unit must currently be at the
// source location, and the route must be one the transition table defines.
// The physical location does not change until the transfer is received.
func (u *Unit) InitiateTransfer(from, to *location.Location, actor kernel.UUID, now time.Time) error {
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
	if !u.locationID.IsEqual(from.ID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"from_location",
			fmt.Errorf("unit is at location %s, not %s", u.locationID, from.ID()),
		)
	}

	newStatus, err := InitiationStatus(u.status, from.Type(), to.Type())
	if err != nil {
		return err
	}

	u.status = newStatus
	u.touch(actor, now)
	return nil
}

// ReceiveAt completes a transfer: the unit moves to the destination location
// and takes the arrival status implied by the destination's type. Only legal
// while the unit is in transit.
func (u *Unit) ReceiveAt(destination *location.Location, actor kernel.UUID, now time.Time) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	if !u.status.IsInTransit() {
		return errs.NewStateConflictError("unit", u.status.String(), "receive transfer")
	}

	newStatus, err := ArrivalStatus(destination.Type())
	if err != nil {
		return err
	}

	u.locationID = destination.ID()
	u.status = newStatus
	u.touch(actor, now)
	return nil
}

// MarkSold moves the unit to the terminal Sold status. Only legal from
// AvailableAtBranch or Reserved. Receipt uniqueness and the one-sale-per-unit
// invariant are enforced by the sale workflow.
func (u *Unit) MarkSold(actor kernel.UUID, now time.Time) error {
	newStatus, err := u.status.Sell()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.touch(actor, now)
	return nil
}

// Reserve holds the unit for a customer. Only legal from AvailableAtBranch.
func (u *Unit) Reserve(actor kernel.UUID, now time.Time) error {
	newStatus, err := u.status.Reserve()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.touch(actor, now)
	return nil
}

// Release returns a reserved unit to AvailableAtBranch.
func (u *Unit) Release(actor kernel.UUID, now time.Time) error {
	newStatus, err := u.status.Release()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.touch(actor, now)
	return nil
}

// Adjustment carries optional field updates for Adjust. Nil pointers leave the
// corresponding field untouched.
type Adjustment struct {
	Brand            *string
	Model            *string
	Color            *string
	Notes            *string
	AssignedBranchID *kernel.UUID
}

// Adjust applies descriptive-field updates. It never touches status, location
// or identification numbers; those change only through their workflows.
func (u *Unit) Adjust(adj Adjustment, actor kernel.UUID, now time.Time) error {
	if adj.Brand != nil {
		if *adj.Brand == "" {
			return errs.NewValueIsRequiredError("brand")
		}
		u.brand = *adj.Brand
	}
	if adj.Model != nil {
		if *adj.Model == "" {
			return errs.NewValueIsRequiredError("model")
		}
		u.model = *adj.Model
	}
	if adj.Color != nil {
		if *adj.Color == "" {
			return errs.NewValueIsRequiredError("color")
		}
		u.color = *adj.Color
	}
	if adj.Notes != nil {
		u.notes = *adj.Notes
	}
	if adj.AssignedBranchID != nil {
		if err := adj.AssignedBranchID.Validate(); err != nil {
			return err
		}
		u.assignedBranchID = adj.AssignedBranchID
	}

	u.touch(actor, now)
	return nil
}

// AddNote appends a free-text note to the unit.
func (u *Unit) AddNote(note string, actor kernel.UUID, now time.Time) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}

	if u.notes == "" {
		u.notes = note
	} else {
		u.notes = u.notes + "\n" + note
	}
	u.touch(actor, now)
	return nil
}

func (u *Unit) touch(actor kernel.UUID, now time.Time) {
	u.lastUpdatedBy = actor
	u.updatedAt = now
}

func (u *Unit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *Unit) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	u.brand = brand
	return nil
}

func (u *Unit) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	u.model = model
	return nil
}

func (u *Unit) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	u.color = color
	return nil
}

func (u *Unit) setSupplierInvoice(invoice string) error {
	if invoice == "" {
		return errs.NewValueIsRequiredError("supplier_invoice")
	}
	u.supplierInvoice = invoice
	return nil
}

func (u *Unit) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.shipmentID = id
	return nil
}

func (u *Unit) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.locationID = id
	return nil
}

func (u *Unit) setLastUpdatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.lastUpdatedBy = id
	return nil
}
