package transferrepo

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/transfer"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransferRepository implements TransferRepository using GORM.
type GormTransferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransferRepository creates a new GORM transfer repository.
func NewGormTransferRepository(db *gorm.DB, tracker aggregateTracker) *GormTransferRepository {
	return &GormTransferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transfer to the database.
func (r *GormTransferRepository) Add(ctx context.Context, aggregate *transfer.Transfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing transfer to the database.
func (r *GormTransferRepository) Update(ctx context.Context, aggregate *transfer.Transfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TransferDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transfer by ID.
func (r *GormTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transfer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByUnit retrieves the pending or in-transit transfer of a unit.
// Not finding one is the normal case when a new transfer is about to start.
func (r *GormTransferRepository) GetActiveByUnit(ctx context.Context, unitID kernel.UUID) (*transfer.Transfer, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}

	activeStatuses := []string{
		transfer.StatusPending.String(),
		transfer.StatusInTransit.String(),
	}

	var dto TransferDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status IN ?", unitID.Bytes(), activeStatuses).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transfer", unitID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
