package salerepo

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/sale"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM.
type GormSaleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSaleRepository creates a new GORM sale repository.
func NewGormSaleRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleRepository {
	return &GormSaleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sale to the database. A duplicate-key failure means another
// transaction sold the same unit or used the same receipt first.
func (r *GormSaleRepository) Add(ctx context.Context, aggregate *sale.Sale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewUniquenessConflictErrorWithCause("sale", aggregate.Receipt(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByUnit retrieves the sale of a unit.
func (r *GormSaleRepository) GetByUnit(ctx context.Context, unitID kernel.UUID) (*sale.Sale, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}

	var dto SaleDTO
	if err := r.db.WithContext(ctx).First(&dto, "unit_id = ?", unitID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale", unitID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByReceipt retrieves the sale carrying a receipt number.
func (r *GormSaleRepository) GetByReceipt(ctx context.Context, receipt string) (*sale.Sale, error) {
	if receipt == "" {
		return nil, errs.NewValueIsRequiredError("receipt")
	}

	var dto SaleDTO
	if err := r.db.WithContext(ctx).First(&dto, "receipt = ?", receipt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale", receipt)
		}
		return nil, err
	}

	return toDomain(dto)
}
