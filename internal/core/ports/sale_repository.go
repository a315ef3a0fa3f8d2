package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/sale"
)

// SaleRepository defines the persistence contract for sale records. Sales are
// write-once; there is no update operation.
type SaleRepository interface {
	// Add persists a new sale record to storage.
	Add(ctx context.Context, aggregate *sale.Sale) error

	// GetByUnit retrieves the sale for a unit, or an object-not-found error
	// when the unit has never been sold.
	GetByUnit(ctx context.Context, unitID kernel.UUID) (*sale.Sale, error)

	// GetByReceipt retrieves the sale carrying a receipt number, or an
	// object-not-found error when the receipt is unused.
	GetByReceipt(ctx context.Context, receipt string) (*sale.Sale, error)
}
