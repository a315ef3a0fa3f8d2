// Package unitrepo provides data transfer objects and mapping functions for
// unit persistence. It implements the repository pattern for the unit domain
// aggregate, handling the conversion between domain entities and database rows.
package unitrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"

	"github.com/google/uuid"
)

// UnitDTO represents the database structure for persisting unit aggregates.
// Engine and chassis numbers carry unique indexes so identification conflicts
// surface as constraint violations even under concurrent matching.
type UnitDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Brand            string
	Model            string
	Color            string
	EngineNumber     *int64     `gorm:"uniqueIndex"`
	ChassisNumber    *string    `gorm:"uniqueIndex"`
	SupplierInvoice  string
	ShipmentID       uuid.UUID  `gorm:"type:uuid;index"`
	LocationID       uuid.UUID  `gorm:"type:uuid;index"`
	AssignedBranchID *uuid.UUID `gorm:"type:uuid"`
	Status           string     `gorm:"index"`
	Notes            string
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
	LastUpdatedBy    uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for unit entities.
func (UnitDTO) TableName() string {
	return "units"
}

// fromDomain converts a unit domain aggregate to its database representation.
func fromDomain(aggregate *unit.Unit) UnitDTO {
	var assignedBranchID *uuid.UUID
	if id := aggregate.AssignedBranchID(); id != nil {
		raw := id.Bytes()
		assignedBranchID = &raw
	}

	return UnitDTO{
		ID:               aggregate.ID().Bytes(),
		Brand:            aggregate.Brand(),
		Model:            aggregate.Model(),
		Color:            aggregate.Color(),
		EngineNumber:     aggregate.EngineNumber(),
		ChassisNumber:    aggregate.ChassisNumber(),
		SupplierInvoice:  aggregate.SupplierInvoice(),
		ShipmentID:       aggregate.ShipmentID().Bytes(),
		LocationID:       aggregate.LocationID().Bytes(),
		AssignedBranchID: assignedBranchID,
		Status:           aggregate.Status().String(),
		Notes:            aggregate.Notes(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		LastUpdatedBy:    aggregate.LastUpdatedBy().Bytes(),
	}
}

// toDomain converts a database DTO to a unit domain aggregate using RestoreUnit.
func toDomain(dto UnitDTO) (*unit.Unit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	var assignedBranchID *kernel.UUID
	if dto.AssignedBranchID != nil {
		branchID, branchErr := kernel.UUIDFromBytes((*dto.AssignedBranchID)[:])
		if branchErr != nil {
			return nil, branchErr
		}

		assignedBranchID = &branchID
	}

	lastUpdatedBy, err := kernel.UUIDFromBytes(dto.LastUpdatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := unit.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return unit.RestoreUnit(
		id,
		dto.Brand, dto.Model, dto.Color,
		dto.EngineNumber,
		dto.ChassisNumber,
		dto.SupplierInvoice,
		shipmentID,
		locationID,
		assignedBranchID,
		status,
		dto.Notes,
		dto.CreatedAt, dto.UpdatedAt,
		lastUpdatedBy,
	)
}
