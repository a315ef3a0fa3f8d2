// Package shipment provides the domain model for import batches. A shipment
// groups the units that arrived together under one supplier invoice.
package shipment

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory methods.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment identifies one import batch. Batch codes are unique across all
// shipments.
type Shipment struct {
	id              kernel.UUID
	batchCode       string
	supplierInvoice string
	importedBy      kernel.UUID
	importedAt      time.Time

	isConstructed bool
}

// NewShipment creates a shipment with validation.
func NewShipment(
	id kernel.UUID,
	batchCode, supplierInvoice string,
	importedBy kernel.UUID,
	importedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		importedAt:    importedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setBatchCode(batchCode),
		s.setSupplierInvoice(supplierInvoice),
		s.setImportedBy(importedBy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	batchCode, supplierInvoice string,
	importedBy kernel.UUID,
	importedAt time.Time,
) (*Shipment, error) {
	return NewShipment(id, batchCode, supplierInvoice, importedBy, importedAt)
}

// Validate ensures the Shipment was constructed through a factory function.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// BatchCode returns the unique batch code.
func (s *Shipment) BatchCode() string {
	return s.batchCode
}

// SupplierInvoice returns the supplier invoice reference.
func (s *Shipment) SupplierInvoice() string {
	return s.supplierInvoice
}

// ImportedBy returns the actor who performed the import.
func (s *Shipment) ImportedBy() kernel.UUID {
	return s.importedBy
}

// ImportedAt returns the import timestamp.
func (s *Shipment) ImportedAt() time.Time {
	return s.importedAt
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setBatchCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("batch_code")
	}
	s.batchCode = code
	return nil
}

func (s *Shipment) setSupplierInvoice(invoice string) error {
	if invoice == "" {
		return errs.NewValueIsRequiredError("supplier_invoice")
	}
	s.supplierInvoice = invoice
	return nil
}

func (s *Shipment) setImportedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.importedBy = id
	return nil
}
