// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// exactly one audit event per unit mutation, and persistence.
package commands

import (
	"context"

	"inventory/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UnitRepoFactory provides access to the unit repository within a transaction.
	UnitRepoFactory interface {
		UnitRepository() ports.UnitRepository
	}

	// EventRepoFactory provides access to the audit event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// TransferRepoFactory provides access to the transfer repository within a transaction.
	TransferRepoFactory interface {
		TransferRepository() ports.TransferRepository
	}

	// SaleRepoFactory provides access to the sale repository within a transaction.
	SaleRepoFactory interface {
		SaleRepository() ports.SaleRepository
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// UnitUoW manages transactions for operations that touch only a unit and
	// its audit trail: adjustments, notes, reservations.
	UnitUoW interface {
		TxManager
		UnitRepoFactory
		EventRepoFactory
	}

	// UnitUoWFactory creates new unit-scoped unit of work instances.
	UnitUoWFactory interface {
		Create() UnitUoW
	}

	// IntakeUoW manages transactions for operations that bring units into the
	// system: manual creation and shipment imports. Both resolve the warehouse
	// location and reference a shipment.
	IntakeUoW interface {
		TxManager
		UnitRepoFactory
		EventRepoFactory
		LocationRepoFactory
		ShipmentRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// IdentificationUoW manages transactions for the identification matching
	// workflow, which resolves the workshop location.
	IdentificationUoW interface {
		TxManager
		UnitRepoFactory
		EventRepoFactory
		LocationRepoFactory
	}

	// IdentificationUoWFactory creates new identification unit of work instances.
	IdentificationUoWFactory interface {
		Create() IdentificationUoW
	}

	// TransferUoW manages transactions for the two-phase relocation workflow.
	// Coordinates changes between the unit and its transfer within one
	// transaction so the pair can never diverge.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   unitRepo := uow.UnitRepository()
	//   transferRepo := uow.TransferRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TransferUoW interface {
		TxManager
		UnitRepoFactory
		EventRepoFactory
		TransferRepoFactory
		LocationRepoFactory
	}

	// TransferUoWFactory creates new transfer unit of work instances.
	TransferUoWFactory interface {
		Create() TransferUoW
	}

	// SaleUoW manages transactions for the sale workflow, which writes the sale
	// record and the unit's terminal status change atomically.
	SaleUoW interface {
		TxManager
		UnitRepoFactory
		EventRepoFactory
		SaleRepoFactory
	}

	// SaleUoWFactory creates new sale unit of work instances.
	SaleUoWFactory interface {
		Create() SaleUoW
	}
)
