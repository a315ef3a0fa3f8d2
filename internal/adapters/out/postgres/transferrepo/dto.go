// Package transferrepo provides persistence for transfer aggregates.
package transferrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/transfer"

	"github.com/google/uuid"
)

// TransferDTO represents the database structure for persisting transfers.
type TransferDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID         uuid.UUID `gorm:"type:uuid;index"`
	FromLocationID uuid.UUID `gorm:"type:uuid"`
	ToLocationID   uuid.UUID `gorm:"type:uuid"`
	ETA            *time.Time
	Reason         string
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	ReceivedBy     *uuid.UUID `gorm:"type:uuid"`
	ReceivedAt     *time.Time
	Status         string `gorm:"index"`
}

// TableName specifies the database table name for transfers.
func (TransferDTO) TableName() string {
	return "transfers"
}

// fromDomain converts a transfer domain aggregate to its database representation.
func fromDomain(aggregate *transfer.Transfer) TransferDTO {
	var receivedBy *uuid.UUID
	if id := aggregate.ReceivedBy(); id != nil {
		raw := id.Bytes()
		receivedBy = &raw
	}

	return TransferDTO{
		ID:             aggregate.ID().Bytes(),
		UnitID:         aggregate.UnitID().Bytes(),
		FromLocationID: aggregate.FromLocationID().Bytes(),
		ToLocationID:   aggregate.ToLocationID().Bytes(),
		ETA:            aggregate.ETA(),
		Reason:         aggregate.Reason(),
		CreatedBy:      aggregate.CreatedBy().Bytes(),
		CreatedAt:      aggregate.CreatedAt(),
		ReceivedBy:     receivedBy,
		ReceivedAt:     aggregate.ReceivedAt(),
		Status:         aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a transfer domain aggregate using RestoreTransfer.
func toDomain(dto TransferDTO) (*transfer.Transfer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}

	fromLocationID, err := kernel.UUIDFromBytes(dto.FromLocationID[:])
	if err != nil {
		return nil, err
	}

	toLocationID, err := kernel.UUIDFromBytes(dto.ToLocationID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var receivedBy *kernel.UUID
	if dto.ReceivedBy != nil {
		receiver, receiverErr := kernel.UUIDFromBytes((*dto.ReceivedBy)[:])
		if receiverErr != nil {
			return nil, receiverErr
		}

		receivedBy = &receiver
	}

	status, err := transfer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return transfer.RestoreTransfer(
		id,
		unitID,
		fromLocationID, toLocationID,
		dto.ETA,
		dto.Reason,
		createdBy,
		dto.CreatedAt,
		receivedBy,
		dto.ReceivedAt,
		status,
	)
}
