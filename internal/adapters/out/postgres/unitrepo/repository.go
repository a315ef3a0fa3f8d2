package unitrepo

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUnitRepository implements UnitRepository using GORM.
type GormUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUnitRepository creates a new GORM unit repository.
func NewGormUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormUnitRepository {
	return &GormUnitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new unit to the database.
func (r *GormUnitRepository) Add(ctx context.Context, aggregate *unit.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewUniquenessConflictErrorWithCause("unit", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing unit to the database. A duplicate-key failure here
// means another transaction bound the same engine or chassis number first.
func (r *GormUnitRepository) Update(ctx context.Context, aggregate *unit.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UnitDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewUniquenessConflictErrorWithCause("identification numbers", aggregate.ID().String(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a unit by ID.
func (r *GormUnitRepository) Get(ctx context.Context, id kernel.UUID) (*unit.Unit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unit", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a unit by ID holding a row lock until the enclosing
// transaction ends. Concurrent mutations of the same unit serialize on this lock.
func (r *GormUnitRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*unit.Unit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unit", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstUnidentifiedForUpdate retrieves the oldest unidentified unit with a
// row lock held, optionally scoped to one shipment. FIFO by creation time.
func (r *GormUnitRepository) GetFirstUnidentifiedForUpdate(
	ctx context.Context,
	shipmentID *kernel.UUID,
) (*unit.Unit, error) {
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ?", unit.StatusUnidentifiedInWarehouse.String())
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return nil, err
		}
		query = query.Where("shipment_id = ?", shipmentID.Bytes())
	}

	var dto UnitDTO
	if err := query.Order("created_at, id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unit", "first unidentified")
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithEngineNumber reports whether any unit already carries the engine number.
func (r *GormUnitRepository) ExistsWithEngineNumber(ctx context.Context, engineNumber int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("engine_number = ?", engineNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsWithChassisNumber reports whether any unit already carries the chassis number.
func (r *GormUnitRepository) ExistsWithChassisNumber(ctx context.Context, chassisNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("chassis_number = ?", chassisNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
