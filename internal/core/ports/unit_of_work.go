package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every workflow
// operation runs inside exactly one unit of work: it loads the unit through a
// locked read, mutates aggregates, appends the paired audit event and commits,
// or rolls everything back leaving no partial state.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// UnitRepository returns a UnitRepository bound to the current transaction.
	UnitRepository() UnitRepository

	// EventRepository returns an EventRepository bound to the current transaction.
	EventRepository() EventRepository

	// TransferRepository returns a TransferRepository bound to the current transaction.
	TransferRepository() TransferRepository

	// SaleRepository returns a SaleRepository bound to the current transaction.
	SaleRepository() SaleRepository

	// LocationRepository returns a LocationRepository bound to the current transaction.
	LocationRepository() LocationRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository
}
