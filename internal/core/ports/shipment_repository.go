package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for import batches.
type ShipmentRepository interface {
	// Add persists a new shipment to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByBatchCode retrieves a shipment by its unique batch code.
	GetByBatchCode(ctx context.Context, batchCode string) (*shipment.Shipment, error)
}
