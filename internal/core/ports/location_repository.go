package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for location reference data.
type LocationRepository interface {
	// Add persists a new location to storage.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing location (activation flag).
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetFirstByType retrieves the first active location of a type. Used to
	// resolve the workshop for identification and the warehouse for imports.
	GetFirstByType(ctx context.Context, locType location.Type) (*location.Location, error)
}
