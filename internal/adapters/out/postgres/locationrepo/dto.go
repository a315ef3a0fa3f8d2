// Package locationrepo provides persistence for location reference data.
package locationrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting locations.
type LocationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	LocationType string    `gorm:"index"`
	Active       bool
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for locations.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location domain aggregate to its database representation.
func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		LocationType: aggregate.Type().String(),
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a location domain aggregate using RestoreLocation.
func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	locType, err := location.TypeFromCode(dto.LocationType)
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(id, dto.Name, locType, dto.Active, dto.CreatedAt)
}
