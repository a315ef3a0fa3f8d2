package queries

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/guard"
)

var ErrGetUnitHistoryQueryIsNotConstructed = errors.New(
	"GetUnitHistoryQuery must be created via NewGetUnitHistoryQuery constructor",
)

// GetUnitHistoryQuery retrieves the full audit trail of one unit, newest
// event first.
type GetUnitHistoryQuery struct {
	unitID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnitHistoryQuery creates an audit trail query for the given unit.
func NewGetUnitHistoryQuery(unitID kernel.UUID) (GetUnitHistoryQuery, error) {
	if err := unitID.Validate(); err != nil {
		return GetUnitHistoryQuery{}, err
	}

	return GetUnitHistoryQuery{
		unitID: unitID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitHistoryQueryIsNotConstructed)
}

// UnitID returns the unit whose history is requested.
func (q GetUnitHistoryQuery) UnitID() kernel.UUID {
	return q.unitID
}

// GetUnitHistoryQueryResponse is the read model of one audit event.
type GetUnitHistoryQueryResponse struct {
	ID        kernel.UUID
	UnitID    kernel.UUID
	EventType string
	Before    *unit.Snapshot
	After     unit.Snapshot
	UserID    kernel.UUID
	Reason    string
	Timestamp time.Time
}
