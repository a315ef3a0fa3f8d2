// Package shipmentrepo provides persistence for import batches.
package shipmentrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchCode       string    `gorm:"uniqueIndex"`
	SupplierInvoice string
	ImportedBy      uuid.UUID `gorm:"type:uuid"`
	ImportedAt      time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:              aggregate.ID().Bytes(),
		BatchCode:       aggregate.BatchCode(),
		SupplierInvoice: aggregate.SupplierInvoice(),
		ImportedBy:      aggregate.ImportedBy().Bytes(),
		ImportedAt:      aggregate.ImportedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	importedBy, err := kernel.UUIDFromBytes(dto.ImportedBy[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, dto.BatchCode, dto.SupplierInvoice, importedBy, dto.ImportedAt)
}
