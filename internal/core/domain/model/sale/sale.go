// Package sale provides the domain model for the terminal disposition of a
// unit. A sale is written once and never mutated; the uniqueness of receipts
// and the one-sale-per-unit rule are enforced by the sale workflow together
// with database constraints.
package sale

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
)

// ErrSaleIsNotConstructed is returned when a Sale instance was not created
// through the NewSale or RestoreSale factory methods.
var ErrSaleIsNotConstructed = errors.New("Sale must be created via NewSale or RestoreSale")

// Sale records the sale of one unit at a branch. Immutable after creation.
type Sale struct {
	id           kernel.UUID
	unitID       kernel.UUID
	receipt      string
	soldBy       kernel.UUID
	branchID     kernel.UUID
	soldAt       time.Time
	customerName *string

	isConstructed bool
}

// NewSale creates a sale record with validation.
func NewSale(
	id kernel.UUID,
	unitID kernel.UUID,
	receipt string,
	soldBy kernel.UUID,
	branchID kernel.UUID,
	soldAt time.Time,
	customerName *string,
) (*Sale, error) {
	s := &Sale{
		soldAt:        soldAt,
		customerName:  customerName,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUnitID(unitID),
		s.setReceipt(receipt),
		s.setSoldBy(soldBy),
		s.setBranchID(branchID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSale reconstructs a sale from persistence.
func RestoreSale(
	id kernel.UUID,
	unitID kernel.UUID,
	receipt string,
	soldBy kernel.UUID,
	branchID kernel.UUID,
	soldAt time.Time,
	customerName *string,
) (*Sale, error) {
	return NewSale(id, unitID, receipt, soldBy, branchID, soldAt, customerName)
}

// Validate ensures the Sale was constructed through a factory function.
func (s *Sale) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSaleIsNotConstructed
	}
	return nil
}

// ID returns the sale's unique identifier.
func (s *Sale) ID() kernel.UUID {
	return s.id
}

// UnitID returns the sold unit. At most one sale ever exists per unit.
func (s *Sale) UnitID() kernel.UUID {
	return s.unitID
}

// Receipt returns the globally unique receipt number.
func (s *Sale) Receipt() string {
	return s.receipt
}

// SoldBy returns the selling actor.
func (s *Sale) SoldBy() kernel.UUID {
	return s.soldBy
}

// BranchID returns the branch where the sale happened.
func (s *Sale) BranchID() kernel.UUID {
	return s.branchID
}

// SoldAt returns the sale timestamp.
func (s *Sale) SoldAt() time.Time {
	return s.soldAt
}

// CustomerName returns the optional customer name.
func (s *Sale) CustomerName() *string {
	return s.customerName
}

func (s *Sale) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sale) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.unitID = id
	return nil
}

func (s *Sale) setReceipt(receipt string) error {
	if receipt == "" {
		return errs.NewValueIsRequiredError("receipt")
	}
	s.receipt = receipt
	return nil
}

func (s *Sale) setSoldBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.soldBy = id
	return nil
}

func (s *Sale) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.branchID = id
	return nil
}
