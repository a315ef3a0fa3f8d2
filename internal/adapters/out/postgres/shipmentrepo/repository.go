package shipmentrepo

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/shipment"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment to the database. A duplicate-key failure means the
// batch code was imported concurrently.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewUniquenessConflictErrorWithCause("batch_code", aggregate.BatchCode(), err)
		}
		return err
	}

	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBatchCode retrieves a shipment by its unique batch code.
func (r *GormShipmentRepository) GetByBatchCode(ctx context.Context, batchCode string) (*shipment.Shipment, error) {
	if batchCode == "" {
		return nil, errs.NewValueIsRequiredError("batch_code")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "batch_code = ?", batchCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", batchCode)
		}
		return nil, err
	}

	return toDomain(dto)
}
