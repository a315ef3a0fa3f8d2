package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
)

// EventRepository defines the persistence contract for the append-only audit
// log. There is deliberately no update or delete operation: once written, an
// event is tamper-evident history.
type EventRepository interface {
	// Append persists a new audit event. Fails only on referential-integrity
	// violations, which must abort the enclosing transaction.
	Append(ctx context.Context, event *unit.Event) error

	// GetByUnit retrieves the full audit trail of a unit, newest first.
	GetByUnit(ctx context.Context, unitID kernel.UUID) ([]*unit.Event, error)
}
