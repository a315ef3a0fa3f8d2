package eventrepo

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM. The repository
// exposes no update or delete so the log stays append-only at the type level;
// the database is expected to carry matching privileges in production.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append saves a new audit event to the database.
func (r *GormEventRepository) Append(ctx context.Context, event *unit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(event)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByUnit retrieves the audit trail of one unit, newest event first.
func (r *GormEventRepository) GetByUnit(ctx context.Context, unitID kernel.UUID) ([]*unit.Event, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID.Bytes()).
		Order("timestamp DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*unit.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
