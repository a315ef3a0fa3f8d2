package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
)

// UnitRepository defines the persistence contract for unit aggregates.
type UnitRepository interface {
	// Add persists a new unit aggregate to storage.
	Add(ctx context.Context, aggregate *unit.Unit) error

	// Update persists changes to an existing unit aggregate.
	Update(ctx context.Context, aggregate *unit.Unit) error

	// Get retrieves a unit by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*unit.Unit, error)

	// GetForUpdate retrieves a unit by id with a row lock held for the rest of
	// the transaction. Workflows that mutate a unit must read it through this
	// method so two concurrent operations on the same unit serialize instead
	// of both observing the pre-mutation state.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*unit.Unit, error)

	// GetFirstUnidentifiedForUpdate retrieves the oldest still-unidentified
	// unit, optionally scoped to a shipment, with a row lock held. Ordering is
	// FIFO by creation time.
	GetFirstUnidentifiedForUpdate(ctx context.Context, shipmentID *kernel.UUID) (*unit.Unit, error)

	// ExistsWithEngineNumber reports whether any unit already carries the
	// given engine number.
	ExistsWithEngineNumber(ctx context.Context, engineNumber int64) (bool, error)

	// ExistsWithChassisNumber reports whether any unit already carries the
	// given chassis number.
	ExistsWithChassisNumber(ctx context.Context, chassisNumber string) (bool, error)
}
