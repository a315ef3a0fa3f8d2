// Package salerepo provides persistence for write-once sale records.
package salerepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/sale"

	"github.com/google/uuid"
)

// SaleDTO represents the database structure for persisting sales. The unique
// indexes on unit and receipt are the last line of defense for the
// one-sale-per-unit and receipt-uniqueness rules under concurrency.
type SaleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Receipt      string    `gorm:"uniqueIndex"`
	SoldBy       uuid.UUID `gorm:"type:uuid"`
	BranchID     uuid.UUID `gorm:"type:uuid"`
	SoldAt       time.Time `gorm:"autoCreateTime:false"`
	CustomerName *string
}

// TableName specifies the database table name for sales.
func (SaleDTO) TableName() string {
	return "sales"
}

// fromDomain converts a sale domain aggregate to its database representation.
func fromDomain(aggregate *sale.Sale) SaleDTO {
	return SaleDTO{
		ID:           aggregate.ID().Bytes(),
		UnitID:       aggregate.UnitID().Bytes(),
		Receipt:      aggregate.Receipt(),
		SoldBy:       aggregate.SoldBy().Bytes(),
		BranchID:     aggregate.BranchID().Bytes(),
		SoldAt:       aggregate.SoldAt(),
		CustomerName: aggregate.CustomerName(),
	}
}

// toDomain converts a database DTO to a sale domain aggregate using RestoreSale.
func toDomain(dto SaleDTO) (*sale.Sale, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}

	soldBy, err := kernel.UUIDFromBytes(dto.SoldBy[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	return sale.RestoreSale(id, unitID, dto.Receipt, soldBy, branchID, dto.SoldAt, dto.CustomerName)
}
