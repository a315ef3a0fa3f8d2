package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/transfer"
)

// TransferRepository defines the persistence contract for transfer aggregates.
type TransferRepository interface {
	// Add persists a new transfer aggregate to storage.
	Add(ctx context.Context, aggregate *transfer.Transfer) error

	// Update persists changes to an existing transfer aggregate.
	Update(ctx context.Context, aggregate *transfer.Transfer) error

	// Get retrieves a transfer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error)

	// GetActiveByUnit retrieves the unit's pending or in-transit transfer.
	// Returns an object-not-found error when the unit has no active transfer,
	// which is the normal case when initiating a new one.
	GetActiveByUnit(ctx context.Context, unitID kernel.UUID) (*transfer.Transfer, error)
}
